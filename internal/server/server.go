// Package server exposes the simulation engine over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/haskel/headroom/internal/config"
	"github.com/haskel/headroom/internal/scenario"
	"github.com/haskel/headroom/internal/server/middleware"
	"github.com/haskel/headroom/internal/simulation"
	"github.com/haskel/headroom/internal/sysinfo"
)

type Server struct {
	httpServer *http.Server
	engine     *simulation.Engine
	store      *scenario.Store
	collector  *sysinfo.Collector
	config     *config.Config
	logger     *slog.Logger
	version    string
	startedAt  time.Time
	authConfig *middleware.AuthConfig
}

func New(cfg *config.Config, engine *simulation.Engine, store *scenario.Store, collector *sysinfo.Collector, logger *slog.Logger, version string) *Server {
	authConfig := &middleware.AuthConfig{
		Enabled:  cfg.Auth.Enabled,
		User:     cfg.Auth.User,
		Password: cfg.Auth.Password,
	}

	s := &Server{
		engine:     engine,
		store:      store,
		collector:  collector,
		config:     cfg,
		logger:     logger,
		version:    version,
		startedAt:  time.Now(),
		authConfig: authConfig,
	}

	mux := s.setupRoutes()

	handler := middleware.Chain(
		mux,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.RateLimit(&middleware.RateLimitConfig{
			Enabled:           cfg.Server.RateLimit.Enabled,
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			Burst:             cfg.Server.RateLimit.Burst,
		}),
		middleware.MaxBody(cfg.Server.MaxBodyBytes),
		middleware.Auth(authConfig, "/health"), // Exclude /health from auth
	)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// ReloadConfig applies runtime-changeable configuration.
// Host and port changes require a restart.
func (s *Server) ReloadConfig(cfg *config.Config) {
	s.logger.Info("reloading configuration")

	// Pointer is shared with the auth middleware
	s.authConfig.Update(cfg.Auth.Enabled, cfg.Auth.User, cfg.Auth.Password)

	s.config = cfg

	s.logger.Info("configuration reloaded",
		"auth_enabled", cfg.Auth.Enabled,
		"default_trials", cfg.Simulation.DefaultTrials,
	)
}

func (s *Server) Start() error {
	s.logger.Info("server starting",
		"addr", s.httpServer.Addr,
	)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}
