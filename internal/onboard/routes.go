// Package onboard declares the first-login onboarding endpoints.
package onboard

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/openapi"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the onboarding route group.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "onboard."+name)
	}

	return routes.Group{
		Name:        "onboard",
		Tags:        []string{"Onboarding"},
		Description: "Username selection after account creation",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/hello",
				Handler: op("hello"),
				OpenAPI: &openapi.Operation{
					OperationID: "hello_req",
					Summary:     "Check Onboarding Status",
					Description: "This will tell you whether the current account requires onboarding or whether you can continue to send requests as usual.",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Onboarding status", "DataHello"),
					},
				},
			},
			{
				Method:  "POST",
				Pattern: "/complete",
				Handler: op("complete"),
				OpenAPI: &openapi.Operation{
					OperationID: "complete_req",
					Summary:     "Complete Onboarding",
					Description: "This sets a new username, completes onboarding and allows a user to start using Revolt.",
					RequestBody: openapi.RequestBodyJSON("DataOnboard", true),
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Onboarded user", "User"),
					},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"DataHello": {
				Type:     "object",
				Required: []string{"onboarding"},
				Properties: map[string]*openapi.Schema{
					"onboarding": {Type: "boolean", Description: "Whether onboarding is required"},
				},
			},
			"DataOnboard": {
				Type:     "object",
				Required: []string{"username"},
				Properties: map[string]*openapi.Schema{
					"username": {Type: "string", Description: "New username which will be used to identify the user on the platform"},
				},
			},
		},
	}
}
