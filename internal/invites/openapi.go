package invites

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	Fetch  *openapi.Operation
	Join   *openapi.Operation
	Delete *openapi.Operation
}

var target = openapi.PathParam("target", "Invite code")

// Spec contains OpenAPI operation definitions for the invite endpoints.
var Spec = spec{
	Fetch: &openapi.Operation{
		OperationID: "invite_fetch_req",
		Summary:     "Fetch Invite",
		Description: "Fetch an invite by its id.",
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Invite", "Invite"),
			404: openapi.ResponseJSON("Unknown invite", "Error"),
		},
	},
	Join: &openapi.Operation{
		OperationID: "invite_join_req",
		Summary:     "Join Invite",
		Description: "Join an invite by its ID.",
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Joined server or group", "InviteJoinResponse"),
		},
	},
	Delete: &openapi.Operation{
		OperationID: "invite_delete_req",
		Summary:     "Delete Invite",
		Description: "Delete an invite by its id.",
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			204: {Description: "Invite deleted"},
		},
	},
}

// Schemas returns the invite schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Invite": {
			Type:     "object",
			Required: []string{"type", "_id", "creator", "channel"},
			Properties: map[string]*openapi.Schema{
				"type":    {Type: "string", Enum: []string{"Server", "Group"}},
				"_id":     {Type: "string", Description: "Invite code"},
				"server":  {Type: "string"},
				"creator": {Type: "string"},
				"channel": {Type: "string"},
			},
		},
		"InviteJoinResponse": {
			Type:     "object",
			Required: []string{"type"},
			Properties: map[string]*openapi.Schema{
				"type":     {Type: "string", Enum: []string{"Server", "Group"}},
				"channel":  openapi.SchemaRef("Channel"),
				"channels": {Type: "array", Items: openapi.SchemaRef("Channel")},
				"server":   openapi.SchemaRef("Server"),
			},
		},
	}
}
