package chat

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/museum-guide/backend/internal/handler/apierr"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	chatService "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/pkg/utils"
)

// Handler 会话服务的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
	log     *zap.SugaredLogger
}

// New 创建会话处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		log:     logger.Named("http"),
	}
}

// RegisterRoutes 注册会话相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", h.handleCreateSession)
	r.Get("/sessions/{sessionID}", h.handleGetSession)
	r.Delete("/sessions/{sessionID}", h.handleDeleteSession)
	r.Post("/sessions/{sessionID}/actions", h.handleApplyAction)
}

// SessionResponse 是会话类接口的统一响应体
type SessionResponse struct {
	Session chat.Session          `json:"session"`
	Turns   []chat.Turn           `json:"turns"`
	Allowed []dialogue.ActionKind `json:"allowed"`
	Error   string                `json:"error,omitempty"`
	Code    string                `json:"code,omitempty"`
}

// handleCreateSession 创建会话，请求体可省略
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.chatSvc.CreateSession(r.Context(), payload.Language)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, SessionResponse{
		Session: out.Session,
		Turns:   out.Turns,
		Allowed: out.Allowed,
	})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, SessionResponse{
		Session: session,
		Turns:   []chat.Turn{},
		Allowed: h.chatSvc.Allowed(session),
	})
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.DeleteSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleApplyAction 执行一次操作。被拒绝的操作仍返回会话与引导消息，状态码表示拒绝原因
func (h *Handler) handleApplyAction(w http.ResponseWriter, r *http.Request) {
	var action dialogue.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := action.Validate(); err != nil {
		utils.RespondErrorCode(w, http.StatusBadRequest, apierr.CodeMalformedAction, err.Error())
		return
	}

	out, err := h.chatSvc.Apply(r.Context(), chi.URLParam(r, "sessionID"), action)
	if err != nil && out.Session.ID == "" {
		h.respondServiceError(w, err)
		return
	}

	resp := SessionResponse{
		Session: out.Session,
		Turns:   out.Turns,
		Allowed: out.Allowed,
	}
	if resp.Turns == nil {
		resp.Turns = []chat.Turn{}
	}
	status := http.StatusOK
	if err != nil {
		status, resp.Code = apierr.Classify(err)
		resp.Error = apierr.Message(err)
	}
	utils.RespondJSON(w, status, resp)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	status, code := apierr.Classify(err)
	if status == http.StatusInternalServerError {
		h.log.Errorw("session request failed", "error", err)
	}
	utils.RespondErrorCode(w, status, code, apierr.Message(err))
}
