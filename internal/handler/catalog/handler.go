package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	"github.com/zhouzirui/museum-guide/backend/pkg/utils"
)

// Handler 提供访客分组与文物目录的只读接口
type Handler struct {
	profiles  profile.Store
	artifacts artifact.Store
}

// New 创建目录处理器
func New(profiles profile.Store, artifacts artifact.Store) *Handler {
	return &Handler{
		profiles:  profiles,
		artifacts: artifacts,
	}
}

// RegisterRoutes 注册目录相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profiles", h.handleListProfiles)
	r.Get("/artifacts", h.handleListArtifacts)
	r.Get("/artifacts/{artifactID}", h.handleGetArtifact)
}

func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.profiles.List())
}

// handleListArtifacts 默认返回完整条目，?view=ref 时只返回选择列表所需字段
func (h *Handler) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	items := h.artifacts.List()
	if r.URL.Query().Get("view") == "ref" {
		refs := make([]artifact.Ref, 0, len(items))
		for _, a := range items {
			refs = append(refs, a.Ref())
		}
		utils.RespondJSON(w, http.StatusOK, refs)
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	a, ok := h.artifacts.FindByID(chi.URLParam(r, "artifactID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "artifact not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, a)
}
