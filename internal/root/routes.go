// Package root serves the node information endpoints mounted at "/".
package root

import (
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Info is the node configuration reported by GET /.
type Info struct {
	Revolt   string          `json:"revolt"`
	Features map[string]bool `json:"features"`
	WS       string          `json:"ws"`
	App      string          `json:"app"`
}

// Routes returns the root route group.
func Routes(info Info) routes.Group {
	return routes.Group{
		Name:        "root",
		Tags:        []string{"Core"},
		Description: "Node information",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/", Handler: handleRoot(info), OpenAPI: Spec.Root},
			{Method: "GET", Pattern: "/ping", Handler: handlePing, OpenAPI: Spec.Ping},
		},
		Schemas: Spec.Schemas(),
	}
}

func handleRoot(info Info) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, info)
	}
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"pong": true})
}

// NewInfo describes a node running version with every optional feature
// disabled.
func NewInfo(version string) Info {
	return Info{
		Revolt: version,
		Features: map[string]bool{
			"captcha":     false,
			"email":       false,
			"invite_only": false,
			"autumn":      false,
			"january":     false,
			"voso":        false,
		},
		WS:  "wss://ws.revolt.chat",
		App: "https://app.revolt.chat",
	}
}
