package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/delta/pkg/openapi"
)

const (
	// EnvAPIWatchConfig toggles recomposing the document when the config file changes.
	EnvAPIWatchConfig = "API_WATCH_CONFIG"

	// EnvAPIDocsUI selects the interactive documentation UIs.
	EnvAPIDocsUI = "API_DOCS_UI"
)

var openAPIEnv = &openapi.ConfigEnv{
	Title:          "API_OPENAPI_TITLE",
	Description:    "API_OPENAPI_DESCRIPTION",
	Version:        "API_OPENAPI_VERSION",
	TermsOfService: "API_OPENAPI_TERMS_OF_SERVICE",
}

// DocsUI selects which interactive documentation renderers are served.
type DocsUI string

const (
	DocsUIBoth    DocsUI = "both"
	DocsUIScalar  DocsUI = "scalar"
	DocsUISwagger DocsUI = "swagger"
	DocsUINone    DocsUI = "none"
)

// Scalar reports whether the Scalar UI is served.
func (d DocsUI) Scalar() bool {
	return d == DocsUIBoth || d == DocsUIScalar
}

// Swagger reports whether the Swagger UI is served.
func (d DocsUI) Swagger() bool {
	return d == DocsUIBoth || d == DocsUISwagger
}

// APIConfig contains configuration for the API surface and its document.
type APIConfig struct {
	OpenAPI     openapi.Config `toml:"openapi"`
	WatchConfig bool           `toml:"watch_config"`
	DocsUI      DocsUI         `toml:"docs_ui"`
}

// Finalize applies defaults, loads environment overrides, and validates the API configuration.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

func (c *APIConfig) loadDefaults() {
	if c.DocsUI == "" {
		c.DocsUI = DocsUIBoth
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIWatchConfig); v != "" {
		if watch, err := strconv.ParseBool(v); err == nil {
			c.WatchConfig = watch
		}
	}
	if v := os.Getenv(EnvAPIDocsUI); v != "" {
		c.DocsUI = DocsUI(v)
	}
}

func (c *APIConfig) validate() error {
	switch c.DocsUI {
	case DocsUIBoth, DocsUIScalar, DocsUISwagger, DocsUINone:
		return nil
	default:
		return fmt.Errorf("invalid docs_ui: %s (must be both, scalar, swagger, or none)", c.DocsUI)
	}
}
