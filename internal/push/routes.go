// Package push declares the web push subscription endpoints.
package push

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/openapi"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the web push route group.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "push."+name)
	}

	return routes.Group{
		Name:        "push",
		Tags:        []string{"Web Push"},
		Description: "Web push subscriptions",
		Routes: []routes.Route{
			{
				Method:  "POST",
				Pattern: "/subscribe",
				Handler: op("subscribe"),
				OpenAPI: &openapi.Operation{
					OperationID: "subscribe_req",
					Summary:     "Push Subscribe",
					Description: "Create a new Web Push subscription. If an existing subscription exists on this session, it will be removed.",
					RequestBody: openapi.RequestBodyJSON("WebPushSubscription", true),
					Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
				},
			},
			{
				Method:  "POST",
				Pattern: "/unsubscribe",
				Handler: op("unsubscribe"),
				OpenAPI: &openapi.Operation{
					OperationID: "unsubscribe_req",
					Summary:     "Unsubscribe",
					Description: "Remove the Web Push subscription associated with the current session.",
					Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"WebPushSubscription": {
				Type:     "object",
				Required: []string{"endpoint", "p256dh", "auth"},
				Properties: map[string]*openapi.Schema{
					"endpoint": {Type: "string"},
					"p256dh":   {Type: "string"},
					"auth":     {Type: "string"},
				},
			},
		},
	}
}
