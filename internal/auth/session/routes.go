// Package session declares the login and session management endpoints.
package session

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the session route group.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "session."+name)
	}

	return routes.Group{
		Name:        "session",
		Tags:        []string{"Session"},
		Description: "Authentication sessions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: op("login"), OpenAPI: Spec.Login},
			{Method: "POST", Pattern: "/logout", Handler: op("logout"), OpenAPI: Spec.Logout},
			{Method: "GET", Pattern: "/all", Handler: op("fetch_all"), OpenAPI: Spec.FetchAll},
			{Method: "DELETE", Pattern: "/all", Handler: op("revoke_all"), OpenAPI: Spec.RevokeAll},
			{Method: "PATCH", Pattern: "/{id}", Handler: op("edit"), OpenAPI: Spec.Edit},
			{Method: "DELETE", Pattern: "/{id}", Handler: op("revoke"), OpenAPI: Spec.Revoke},
		},
		Schemas: Spec.Schemas(),
	}
}
