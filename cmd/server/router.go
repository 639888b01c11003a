package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/JaimeStill/delta/internal/api"
	"github.com/JaimeStill/delta/internal/config"
	"github.com/JaimeStill/delta/pkg/apidoc"
	"github.com/JaimeStill/delta/pkg/metrics"
	"github.com/JaimeStill/delta/pkg/middleware"
)

// swaggerIndex is the Swagger UI page. "/swagger" redirects to it, and
// TrimSlash turns "/swagger/" into "/swagger".
const swaggerIndex = "/swagger/index.html"

// buildRouter wraps the API surface with process endpoints. The surface
// owns every path not claimed here.
func buildRouter(cfg *config.Config, surface *api.Surface, recorder *metrics.Recorder, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.TrimSlash())
	r.Use(middleware.Logger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !surface.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	if recorder != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, recorder.Handler())
	}

	if cfg.API.DocsUI.Swagger() {
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, swaggerIndex, http.StatusMovedPermanently)
		})
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(apidoc.JSONPath)))
	}

	r.Handle("/*", surface)
	return r
}
