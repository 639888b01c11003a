// Package invites declares the invite endpoints.
package invites

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the invites route group.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "invites."+name)
	}

	return routes.Group{
		Name:        "invites",
		Tags:        []string{"Invites"},
		Description: "Server and group invites",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{target}", Handler: op("fetch"), OpenAPI: Spec.Fetch},
			{Method: "POST", Pattern: "/{target}", Handler: op("join"), OpenAPI: Spec.Join},
			{Method: "DELETE", Pattern: "/{target}", Handler: op("delete"), OpenAPI: Spec.Delete},
		},
		Schemas: Spec.Schemas(),
	}
}
