package guide

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/museum-guide/backend/internal/handler/apierr"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	guideservice "github.com/zhouzirui/museum-guide/backend/internal/service/guide"
	"github.com/zhouzirui/museum-guide/backend/pkg/utils"
)

// Handler 导览问答的HTTP处理器
type Handler struct {
	guide     *guideservice.Service
	artifacts artifact.Store
	profiles  profile.Store
}

// New 创建导览处理器
func New(guide *guideservice.Service, artifacts artifact.Store, profiles profile.Store) *Handler {
	return &Handler{guide: guide, artifacts: artifacts, profiles: profiles}
}

// RegisterRoutes 注册导览相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/guide/ask", h.handleAsk)
	r.Get("/artifacts/{artifactID}/guide", h.handleDescribe)
}

type askRequest struct {
	ArtifactID string `json:"artifactId,omitempty"`
	ProfileID  string `json:"profileId,omitempty"`
	Language   string `json:"language,omitempty"`
	Question   string `json:"question"`
}

type askResponse struct {
	guideservice.Answer
	ArtifactID string `json:"artifactId,omitempty"`
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload askRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Question) == "" {
		utils.RespondError(w, http.StatusBadRequest, "question is required")
		return
	}
	if !validLanguage(payload.Language) {
		utils.RespondErrorCode(w, http.StatusBadRequest, apierr.CodeInvalidLanguage, "language must be ko or en")
		return
	}

	var target *artifact.Artifact
	if payload.ArtifactID != "" {
		a, ok := h.artifacts.FindByID(payload.ArtifactID)
		if !ok {
			utils.RespondError(w, http.StatusNotFound, "artifact not found")
			return
		}
		target = &a
	}

	p, ok := h.profile(payload.ProfileID)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "profile not found")
		return
	}

	answer := h.guide.Ask(r.Context(), payload.Question, target, p, guideservice.WithLanguage(payload.Language))
	utils.RespondJSON(w, http.StatusOK, askResponse{Answer: answer, ArtifactID: payload.ArtifactID})
}

// handleDescribe 生成文物介绍，可通过 ?profileId= 指定语气，?lang= 指定语言
func (h *Handler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("lang")
	if !validLanguage(language) {
		utils.RespondErrorCode(w, http.StatusBadRequest, apierr.CodeInvalidLanguage, "language must be ko or en")
		return
	}

	artifactID := chi.URLParam(r, "artifactID")
	a, ok := h.artifacts.FindByID(artifactID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "artifact not found")
		return
	}

	p, ok := h.profile(r.URL.Query().Get("profileId"))
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "profile not found")
		return
	}

	answer := h.guide.Describe(r.Context(), a, p, guideservice.WithLanguage(language))
	utils.RespondJSON(w, http.StatusOK, askResponse{Answer: answer, ArtifactID: a.ID})
}

// profile 解析可选的分组，空 id 返回 (nil, true)
func (h *Handler) profile(id string) (*profile.Profile, bool) {
	if id == "" {
		return nil, true
	}
	p, ok := h.profiles.FindByID(id)
	if !ok {
		return nil, false
	}
	return &p, true
}

// validLanguage 允许留空，留空时使用服务默认语言
func validLanguage(language string) bool {
	return language == "" || language == "ko" || language == "en"
}
