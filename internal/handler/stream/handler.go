package stream

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/museum-guide/backend/internal/handler/apierr"
	chathandler "github.com/zhouzirui/museum-guide/backend/internal/handler/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	chatService "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/pkg/utils"
)

// SSE event names.
const (
	EventStart    = "start"
	EventProgress = "progress"
	EventResult   = "result"
	EventError    = "error"
)

// Handler applies an action and streams intermediate turns via Server-Sent Events.
// Quiz generation can take several seconds, so the loading turn is pushed
// before the final result.
type Handler struct {
	chatSvc *chatService.Service
	log     *zap.SugaredLogger
}

// New creates a new stream handler
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc, log: logger.Named("stream")}
}

// ErrorEvent is the payload of the error event.
type ErrorEvent struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RegisterRoutes 注册流式接口
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions/{sessionID}/actions/stream", h.handleStreamAction)
}

func (h *Handler) handleStreamAction(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	var action dialogue.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := action.Validate(); err != nil {
		utils.RespondErrorCode(w, http.StatusBadRequest, apierr.CodeMalformedAction, err.Error())
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	utils.SendSSEEvent(w, flusher, EventStart, map[string]string{
		"sessionId": sessionID,
		"kind":      string(action.Kind),
	})

	progress := dialogue.WithProgress(func(turn chat.Turn) {
		utils.SendSSEEvent(w, flusher, EventProgress, turn)
	})

	out, err := h.chatSvc.Apply(r.Context(), sessionID, action, progress)
	if err != nil && out.Session.ID == "" {
		_, code := apierr.Classify(err)
		h.log.Debugw("stream action failed", "session_id", sessionID, "error", err)
		utils.SendSSEEvent(w, flusher, EventError, ErrorEvent{Error: apierr.Message(err), Code: code})
		return
	}

	resp := chathandler.SessionResponse{
		Session: out.Session,
		Turns:   out.Turns,
		Allowed: out.Allowed,
	}
	if err != nil {
		_, resp.Code = apierr.Classify(err)
		resp.Error = apierr.Message(err)
	}
	utils.SendSSEEvent(w, flusher, EventResult, resp)
	h.log.Debugw("stream action completed", "session_id", sessionID, "action", action.Kind, "stage", out.Session.Stage)
}
