package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/museum-guide/backend/internal/config"
	"github.com/zhouzirui/museum-guide/backend/internal/handler"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	"github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/internal/service/guide"
	"github.com/zhouzirui/museum-guide/backend/internal/service/llm"
	"github.com/zhouzirui/museum-guide/backend/internal/service/quiz"
	"github.com/zhouzirui/museum-guide/backend/internal/store"
	"github.com/zhouzirui/museum-guide/backend/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Named("main")

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Infow("no .env file loaded, using system environment only", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}
	logger.SetLevel(cfg.Log.Level)

	shutdownTracing, err := telemetry.Start(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		Insecure:    cfg.Telemetry.Insecure,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		log.Warnw("failed to start tracing, continuing without it", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warnw("failed to flush traces", "error", err)
		}
	}()

	items := artifact.Seed()
	if cfg.Catalog.File != "" {
		items, err = artifact.LoadFile(cfg.Catalog.File)
		if err != nil {
			log.Fatalw("failed to load catalog", "file", cfg.Catalog.File, "error", err)
		}
	}
	catalog := artifact.NewMemoryStore(items)
	profiles := profile.NewMemoryStore(profile.Seed())
	log.Infow("catalog loaded", "artifacts", len(catalog.List()), "profiles", len(profiles.List()))

	// 没有大模型凭证时出题与导览都走确定性兜底
	provider, err := llm.New(ctx, cfg)
	switch {
	case errors.Is(err, llm.ErrUnavailable):
		log.Infow("no llm credentials configured, quiz and guide use templates")
		provider = nil
	case err != nil:
		log.Warnw("failed to initialize llm provider, continuing without it", "error", err)
		provider = nil
	}

	generator := quiz.NewGenerator(catalog, provider, quiz.Config{
		UseLLM:      cfg.Quiz.LLMEnabled,
		Timeout:     cfg.Quiz.Timeout,
		MaxTokens:   cfg.Quiz.MaxTokens,
		Temperature: cfg.Quiz.Temperature,
	})
	controller := dialogue.NewController(catalog, profiles, generator,
		dialogue.WithOfferSize(cfg.Guide.OfferSize),
		dialogue.WithConcurrency(cfg.Quiz.Concurrency),
	)

	sessionStore, err := store.NewByEngine(cfg.Store)
	if err != nil {
		log.Fatalw("failed to open session store", "engine", cfg.Store.Engine, "error", err)
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			log.Warnw("failed to close session store", "error", err)
		}
	}()
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	err = store.CheckReachable(pingCtx, sessionStore)
	cancelPing()
	if err != nil {
		log.Fatalw("session store is not reachable", "engine", cfg.Store.Engine, "error", err)
	}
	if purger, ok := sessionStore.(store.Purger); ok {
		go store.RunPurger(ctx, purger, cfg.Store.TTL, cfg.Store.PurgeInterval, nil)
	}
	log.Infow("session store ready", "engine", cfg.Store.Engine, "path", cfg.Store.Path)

	sessions := chat.NewService(sessionStore, controller, chat.WithDefaultLanguage(cfg.Guide.Language))
	guideSvc := guide.NewService(provider, guide.Config{
		Language:  cfg.Guide.Language,
		MaxTokens: cfg.Guide.MaxTokens,
		Timeout:   cfg.Guide.Timeout,
	})

	router := handler.NewRouter(handler.Deps{
		Profiles:       profiles,
		Artifacts:      catalog,
		Sessions:       sessions,
		Guide:          guideSvc,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	if err := startServer(ctx, cfg.Server, router); err != nil {
		log.Errorw("server error", "error", err)
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) error {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Named("main").Infow("museum guide backend listening", "addr", addr)
	return runServer(ctx, srv)
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
