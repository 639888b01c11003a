package sync

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	GetSettings *openapi.Operation
	SetSettings *openapi.Operation
	GetUnreads  *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the sync endpoints.
var Spec = spec{
	GetSettings: &openapi.Operation{
		OperationID: "get_settings_req",
		Summary:     "Fetch Settings",
		Description: "Fetch settings from server filtered by keys.",
		RequestBody: openapi.RequestBodyJSON("OptionsFetchSettings", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Settings keyed by name, each a [timestamp, value] pair", "UserSettings"),
		},
	},
	SetSettings: &openapi.Operation{
		OperationID: "set_settings_req",
		Summary:     "Set Settings",
		Description: "Upload data to save to settings.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("timestamp", "integer", "Timestamp of settings change, used to avoid feedback loops", false),
		},
		RequestBody: openapi.RequestBodyJSON("DataSetSettings", true),
		Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
	},
	GetUnreads: &openapi.Operation{
		OperationID: "get_unreads_req",
		Summary:     "Fetch Unreads",
		Description: "Fetch information about unread state on channels.",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Unread state per channel",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("ChannelUnread")}},
				},
			},
		},
	},
}

// Schemas returns the sync schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"OptionsFetchSettings": {
			Type:     "object",
			Required: []string{"keys"},
			Properties: map[string]*openapi.Schema{
				"keys": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"UserSettings": {
			Type:        "object",
			Description: "Map of setting keys to [timestamp, value] tuples",
		},
		"DataSetSettings": {
			Type:        "object",
			Description: "Map of setting keys to serialized values",
		},
		"ChannelUnread": {
			Type:     "object",
			Required: []string{"_id"},
			Properties: map[string]*openapi.Schema{
				"_id":      {Type: "object", Description: "Composite key of channel and user"},
				"last_id":  {Type: "string", Nullable: true},
				"mentions": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
	}
}
