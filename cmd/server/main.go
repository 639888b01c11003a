package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/delta/internal/config"
	"github.com/JaimeStill/delta/pkg/logging"
)

func main() {
	configPath := flag.String("config", config.BaseConfigFile, "path to the base configuration file")
	flag.Parse()

	bootstrap := logging.Bootstrap(os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootstrap.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := NewServer(cfg, *configPath)
	if err != nil {
		bootstrap.Error("failed to initialize service", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		bootstrap.Error("failed to start service", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		bootstrap.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
