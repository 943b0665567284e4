package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zhouzirui/museum-guide/backend/internal/handler/apierr"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	chatService "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/pkg/utils"
)

// 消息类型
const (
	TypeAction = "action"
	TypePing   = "ping"
	TypePong   = "pong"
	TypeTurn   = "turn"
	TypeState  = "state"
	TypeError  = "error"
)

const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingPeriod   = 54 * time.Second
)

// Handler WebSocket会话处理器
type Handler struct {
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

// New 创建WebSocket处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: logger.Named("ws"),
	}
}

// RegisterRoutes 注册WebSocket路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions/{sessionID}/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// OutgoingMessage 是服务端推送的消息
type OutgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// StateData 是 state 消息的内容
type StateData struct {
	Stage   chat.Stage            `json:"stage"`
	Session chat.Session          `json:"session"`
	Allowed []dialogue.ActionKind `json:"allowed"`
}

// ErrorData 是 error 消息的内容
type ErrorData struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// conn 串行化写操作，gorilla 的连接不支持并发写
type conn struct {
	ws        *websocket.Conn
	sessionID string
	mu        sync.Mutex
	log       *zap.SugaredLogger
}

func (c *conn) send(msgType string, data interface{}) {
	msg := OutgoingMessage{
		Type:      msgType,
		SessionID: c.sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.ws.WriteJSON(msg); err != nil {
		c.log.Debugw("write failed", "session_id", c.sessionID, "type", msgType, "error", err)
	}
}

func (c *conn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

// handleWebSocket 处理WebSocket连接
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		status, code := apierr.Classify(err)
		utils.RespondErrorCode(w, status, code, apierr.Message(err))
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("upgrade failed", "session_id", sessionID, "error", err)
		return
	}
	defer ws.Close()

	c := &conn{ws: ws, sessionID: sessionID, log: h.log}
	h.log.Infow("connection opened", "session_id", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readTimeout))
	})

	go h.pingLoop(ctx, c)

	c.send(TypeState, stateData(session, h.chatSvc.Allowed(session)))

	for {
		var msg inboundMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warnw("read error", "session_id", sessionID, "error", err)
			}
			h.log.Infow("connection closed", "session_id", sessionID)
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))

		h.handleMessage(ctx, c, &msg)
	}
}

func (h *Handler) handleMessage(ctx context.Context, c *conn, msg *inboundMessage) {
	switch msg.Type {
	case TypePing:
		c.send(TypePong, nil)
	case TypeAction:
		var action dialogue.Action
		if err := json.Unmarshal(msg.Data, &action); err != nil {
			c.send(TypeError, ErrorData{Message: "invalid action payload", Code: apierr.CodeMalformedAction})
			return
		}
		if err := action.Validate(); err != nil {
			c.send(TypeError, ErrorData{Message: err.Error(), Code: apierr.CodeMalformedAction})
			return
		}
		h.applyAction(ctx, c, action)
	default:
		c.send(TypeError, ErrorData{Message: "unsupported message type: " + msg.Type})
	}
}

// applyAction 推送加载中的消息、本次新增的消息，最后推送会话状态。
// 同一 id 的消息可能推送两次，客户端以后到的为准。
func (h *Handler) applyAction(ctx context.Context, c *conn, action dialogue.Action) {
	progress := dialogue.WithProgress(func(turn chat.Turn) {
		c.send(TypeTurn, turn)
	})

	out, err := h.chatSvc.Apply(ctx, c.sessionID, action, progress)
	for _, turn := range out.Turns {
		c.send(TypeTurn, turn)
	}
	if err != nil {
		_, code := apierr.Classify(err)
		c.send(TypeError, ErrorData{Message: apierr.Message(err), Code: code})
		if out.Session.ID == "" {
			return
		}
	}
	c.send(TypeState, stateData(out.Session, out.Allowed))
}

// pingLoop 定期发送ping消息
func (h *Handler) pingLoop(ctx context.Context, c *conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

func stateData(s chat.Session, allowed []dialogue.ActionKind) StateData {
	return StateData{Stage: s.Stage, Session: s, Allowed: allowed}
}
