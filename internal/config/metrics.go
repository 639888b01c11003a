package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// EnvMetricsEnabled toggles the Prometheus endpoint.
	EnvMetricsEnabled = "METRICS_ENABLED"

	// EnvMetricsPath overrides the Prometheus endpoint path.
	EnvMetricsPath = "METRICS_PATH"
)

// MetricsConfig contains Prometheus exposition configuration.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// Finalize applies defaults, loads environment overrides, and validates the metrics configuration.
func (c *MetricsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *MetricsConfig) loadDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "delta"
	}
}

func (c *MetricsConfig) loadEnv() {
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
}

func (c *MetricsConfig) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("invalid path: %q must start with '/'", c.Path)
	}
	return nil
}
