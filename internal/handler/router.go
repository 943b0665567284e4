package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/museum-guide/backend/internal/handler/catalog"
	"github.com/zhouzirui/museum-guide/backend/internal/handler/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/handler/guide"
	"github.com/zhouzirui/museum-guide/backend/internal/handler/stream"
	"github.com/zhouzirui/museum-guide/backend/internal/handler/ws"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	middlewarePkg "github.com/zhouzirui/museum-guide/backend/internal/middleware"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	chatService "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	guideService "github.com/zhouzirui/museum-guide/backend/internal/service/guide"
	"github.com/zhouzirui/museum-guide/backend/pkg/utils"
)

// Deps 汇总路由需要的服务
type Deps struct {
	Profiles       profile.Store
	Artifacts      artifact.Store
	Sessions       *chatService.Service
	Guide          *guideService.Service
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.AccessLog(logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.NewCORS(deps.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		catalog.New(deps.Profiles, deps.Artifacts).RegisterRoutes(api)
		chat.New(deps.Sessions).RegisterRoutes(api)
		stream.New(deps.Sessions).RegisterRoutes(api)
		ws.New(deps.Sessions).RegisterRoutes(api)

		if deps.Guide != nil {
			guide.New(deps.Guide, deps.Artifacts, deps.Profiles).RegisterRoutes(api)
		}
	})

	return r
}
