package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/delta/internal/config"
	"github.com/JaimeStill/delta/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), config.BaseConfigFile))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeoutDuration())
	assert.Equal(t, logging.LevelInfo, cfg.Logging.Level)
	assert.Equal(t, logging.FormatText, cfg.Logging.Format)
	assert.Equal(t, "Revolt API", cfg.API.OpenAPI.Title)
	assert.Equal(t, config.DocsUIBoth, cfg.API.DocsUI)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_BaseFile(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	dir := t.TempDir()
	path := writeFile(t, dir, config.BaseConfigFile, `
shutdown_timeout = "10s"

[server]
host = "127.0.0.1"
port = 9000

[logging]
level = "debug"
format = "json"

[api]
docs_ui = "scalar"

[api.openapi]
title = "Delta"

[[api.openapi.servers]]
url = "http://localhost:9000"
description = "Local"

[metrics]
enabled = true
namespace = "revolt"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeoutDuration())
	assert.Equal(t, logging.LevelDebug, cfg.Logging.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
	assert.True(t, cfg.API.DocsUI.Scalar())
	assert.False(t, cfg.API.DocsUI.Swagger())
	assert.Equal(t, "Delta", cfg.API.OpenAPI.Title)
	assert.Equal(t, "0.5.3-rc.1", cfg.API.OpenAPI.Version)
	require.Len(t, cfg.API.OpenAPI.Servers, 1)
	assert.Equal(t, "http://localhost:9000", cfg.API.OpenAPI.Servers[0].URL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "revolt", cfg.Metrics.Namespace)
}

func TestLoad_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, config.BaseConfigFile, `
[server]
port = 9000

[api.openapi]
title = "Delta"
version = "1.0.0"
`)
	writeFile(t, dir, "config.staging.toml", `
[server]
port = 9100

[api.openapi]
title = "Delta (staging)"
`)
	t.Setenv(config.EnvServiceEnv, "staging")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "Delta (staging)", cfg.API.OpenAPI.Title)
	assert.Equal(t, "1.0.0", cfg.API.OpenAPI.Version)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv(config.EnvServerPort, "9200")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("API_OPENAPI_TITLE", "From Env")
	t.Setenv(config.EnvAPIWatchConfig, "true")
	t.Setenv(config.EnvMetricsEnabled, "true")

	cfg, err := config.Load(filepath.Join(t.TempDir(), config.BaseConfigFile))
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, logging.LevelWarn, cfg.Logging.Level)
	assert.Equal(t, "From Env", cfg.API.OpenAPI.Title)
	assert.True(t, cfg.API.WatchConfig)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[server\nport = 1"},
		{"port", "[server]\nport = 70000"},
		{"timeout", "shutdown_timeout = \"soon\""},
		{"log level", "[logging]\nlevel = \"loud\""},
		{"docs ui", "[api]\ndocs_ui = \"redoc\""},
		{"metrics path", "[metrics]\npath = \"metrics\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), config.BaseConfigFile, tt.content)
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestWatch(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	dir := t.TempDir()
	path := writeFile(t, dir, config.BaseConfigFile, "[api.openapi]\ntitle = \"Before\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	titles := make(chan string, 16)
	require.NoError(t, config.Watch(ctx, path, logging.Discard(), func(cfg *config.Config) {
		select {
		case titles <- cfg.API.OpenAPI.Title:
		default:
		}
	}))

	writeFile(t, dir, config.BaseConfigFile, "[api.openapi]\ntitle = \"After\"\n")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case title := <-titles:
			if title == "After" {
				return
			}
		case <-timeout:
			t.Fatal("no reload observed")
		}
	}
}
