// Package bots declares the bot management endpoints.
package bots

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the bots route group. Operations without explicit tags
// inherit "Bots".
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "bots."+name)
	}

	return routes.Group{
		Name:        "bots",
		Tags:        []string{"Bots"},
		Description: "Bot accounts",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/create", Handler: op("create"), OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/@me", Handler: op("fetch_owned"), OpenAPI: Spec.FetchOwned},
			{Method: "GET", Pattern: "/{target}/invite", Handler: op("fetch_public"), OpenAPI: Spec.FetchPublic},
			{Method: "POST", Pattern: "/{target}/invite", Handler: op("invite"), OpenAPI: Spec.Invite},
			{Method: "GET", Pattern: "/{bot}", Handler: op("fetch"), OpenAPI: Spec.Fetch},
			{Method: "PATCH", Pattern: "/{target}", Handler: op("edit"), OpenAPI: Spec.Edit},
			{Method: "DELETE", Pattern: "/{target}", Handler: op("delete"), OpenAPI: Spec.Delete},
		},
		Schemas: Spec.Schemas(),
	}
}
