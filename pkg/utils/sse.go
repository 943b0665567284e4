package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zhouzirui/museum-guide/backend/internal/logger"
)

// SendSSEChunk 发送Server-Sent Events数据块
func SendSSEChunk(w http.ResponseWriter, flusher http.Flusher, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Named("sse").Warnw("failed to marshal sse payload", "error", err)
		return
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		logger.Named("sse").Debugw("failed to write sse chunk", "error", err)
		return
	}
	flusher.Flush()
}

// SetupSSEHeaders 设置Server-Sent Events响应头
func SetupSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// SendSSEEvent 发送带事件类型的SSE消息
func SendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		logger.Named("sse").Warnw("failed to marshal sse event data", "event", event, "error", err)
		return
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		logger.Named("sse").Debugw("failed to write sse event", "event", event, "error", err)
		return
	}
	flusher.Flush()
}
