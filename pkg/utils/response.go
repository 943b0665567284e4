package utils

import (
	"encoding/json"
	"net/http"

	"github.com/zhouzirui/museum-guide/backend/internal/logger"
)

// ErrorBody 是所有错误响应的结构。
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Named("http").Warnw("failed to encode response", "error", err)
	}
}

// RespondError 发送错误响应
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorBody{Error: message})
}

// RespondErrorCode 发送带机器可读错误码的响应
func RespondErrorCode(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorBody{Error: message, Code: code})
}
