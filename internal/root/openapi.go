package root

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	Root *openapi.Operation
	Ping *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the node endpoints.
var Spec = spec{
	Root: &openapi.Operation{
		OperationID: "root_root",
		Summary:     "Query Node",
		Description: "Fetch the server configuration for this Revolt instance.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Node configuration", "RevoltConfig"),
		},
	},
	Ping: &openapi.Operation{
		OperationID: "root_ping",
		Summary:     "Ping",
		Description: "Check that the node is reachable.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Node is reachable", "Pong"),
		},
	},
}

// Schemas returns the node schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"RevoltConfig": {
			Type:     "object",
			Required: []string{"revolt", "features", "ws", "app"},
			Properties: map[string]*openapi.Schema{
				"revolt":   {Type: "string", Description: "Revolt API version"},
				"features": {Type: "object", Description: "Features enabled on this node"},
				"ws":       {Type: "string", Description: "WebSocket URL"},
				"app":      {Type: "string", Description: "URL pointing to the client serving this node"},
			},
		},
		"Pong": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"pong": {Type: "boolean"},
			},
		},
		"Error": {
			Type:     "object",
			Required: []string{"error"},
			Properties: map[string]*openapi.Schema{
				"error": {Type: "string", Description: "Error message"},
			},
		},
	}
}
