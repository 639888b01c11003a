// Package sync declares the settings and unread state synchronization endpoints.
package sync

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the sync route group.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "sync."+name)
	}

	return routes.Group{
		Name:        "sync",
		Tags:        []string{"Sync"},
		Description: "Cross-client synchronization",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/settings/fetch", Handler: op("get_settings"), OpenAPI: Spec.GetSettings},
			{Method: "POST", Pattern: "/settings/set", Handler: op("set_settings"), OpenAPI: Spec.SetSettings},
			{Method: "GET", Pattern: "/unreads", Handler: op("get_unreads"), OpenAPI: Spec.GetUnreads},
		},
		Schemas: Spec.Schemas(),
	}
}
