package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/JaimeStill/delta/internal/api"
	"github.com/JaimeStill/delta/internal/config"
	"github.com/JaimeStill/delta/internal/root"
	"github.com/JaimeStill/delta/internal/server"
	"github.com/JaimeStill/delta/pkg/apidoc"
	"github.com/JaimeStill/delta/pkg/logging"
	"github.com/JaimeStill/delta/pkg/metrics"
	"github.com/JaimeStill/delta/pkg/routes"
	"github.com/JaimeStill/delta/web/scalar"
)

// Server coordinates the lifecycle of the API surface and its HTTP listener.
type Server struct {
	cfg        *config.Config
	configPath string
	log        *logging.Logger
	logger     *slog.Logger
	logConfig  logging.Config
	surface    *api.Surface
	http       *server.Server
}

// NewServer builds the API surface. Any mount or composition error aborts
// initialization.
func NewServer(cfg *config.Config, configPath string) (*Server, error) {
	log := logging.New(&cfg.Logging, os.Stdout)
	logger := log.Logger

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.New(cfg.Metrics.Namespace)
	}

	mounts := api.Mounts(logger, root.NewInfo(cfg.API.OpenAPI.Version))
	if cfg.API.DocsUI.Scalar() {
		mounts = append(mounts, routes.Mount{
			Prefix: scalar.Path,
			Group:  scalar.Routes(cfg.API.OpenAPI.Title, apidoc.JSONPath),
		})
	}

	surface := api.New(mounts, logger, recorder)
	if err := surface.Build(api.Metadata(&cfg.API.OpenAPI)); err != nil {
		return nil, err
	}

	router := buildRouter(cfg, surface, recorder, logger)

	logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.API.OpenAPI.Version,
		"docs_ui", cfg.API.DocsUI,
	)

	return &Server{
		cfg:        cfg,
		configPath: configPath,
		log:        log,
		logger:     logger,
		logConfig:  cfg.Logging,
		surface:    surface,
		http:       server.New(&cfg.Server, router, logger),
	}, nil
}

// Start begins serving and, when enabled, watches the configuration file
// for document metadata and log level changes until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.http.Start(); err != nil {
		return err
	}

	if s.cfg.API.WatchConfig {
		return config.Watch(ctx, s.configPath, logging.Module(s.logger, "config"), func(next *config.Config) {
			s.log.Apply(&s.logConfig, &next.Logging)
			s.logConfig = next.Logging

			if err := s.surface.Reload(api.Metadata(&next.API.OpenAPI)); err != nil {
				s.logger.Error("document reload rejected", "error", err)
				return
			}
			s.logger.Info("document reloaded", "etag", s.surface.Document().JSONETag)
		})
	}
	return nil
}

// Shutdown gracefully stops the HTTP server within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
