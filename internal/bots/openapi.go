package bots

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	Create      *openapi.Operation
	FetchOwned  *openapi.Operation
	FetchPublic *openapi.Operation
	Invite      *openapi.Operation
	Fetch       *openapi.Operation
	Edit        *openapi.Operation
	Delete      *openapi.Operation
}

var target = openapi.PathParam("target", "Bot ID")

// Spec contains OpenAPI operation definitions for the bot endpoints.
var Spec = spec{
	Create: &openapi.Operation{
		OperationID: "create_create_bot",
		Summary:     "Create Bot",
		Description: "Create a new Revolt bot.",
		RequestBody: openapi.RequestBodyJSON("DataCreateBot", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created bot", "Bot"),
			400: openapi.ResponseJSON("Invalid bot data", "Error"),
		},
	},
	FetchOwned: &openapi.Operation{
		OperationID: "fetch_owned_fetch_owned_bots",
		Summary:     "Fetch Owned Bots",
		Description: "Fetch all of the bots that you have control over.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Owned bots", "OwnedBotsResponse"),
		},
	},
	FetchPublic: &openapi.Operation{
		OperationID: "fetch_public_fetch_public_bot",
		Summary:     "Fetch Public Bot",
		Description: "Fetch details of a public (or owned) bot by its id.",
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Public bot", "PublicBot"),
		},
	},
	Invite: &openapi.Operation{
		OperationID: "invite_invite_bot",
		Summary:     "Invite Bot",
		Description: "Invite a bot to a server or group by its id.",
		Parameters:  []*openapi.Parameter{target},
		RequestBody: openapi.RequestBodyJSON("InviteBotDestination", true),
		Responses: map[int]*openapi.Response{
			204: {Description: "Bot invited"},
		},
	},
	Fetch: &openapi.Operation{
		OperationID: "fetch_fetch_bot",
		Summary:     "Fetch Bot",
		Description: "Fetch details of a bot you own by its id.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("bot", "Bot ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Bot and its user", "BotResponse"),
			404: openapi.ResponseJSON("Unknown bot", "Error"),
		},
	},
	Edit: &openapi.Operation{
		OperationID: "edit_edit_bot",
		Summary:     "Edit Bot",
		Description: "Edit bot details by its id.",
		Parameters:  []*openapi.Parameter{target},
		RequestBody: openapi.RequestBodyJSON("DataEditBot", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated bot", "Bot"),
		},
	},
	Delete: &openapi.Operation{
		OperationID: "delete_delete_bot",
		Summary:     "Delete Bot",
		Description: "Delete a bot by its id.",
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			204: {Description: "Bot deleted"},
		},
	},
}

// Schemas returns the bot domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Bot": {
			Type:     "object",
			Required: []string{"_id", "owner", "token", "public"},
			Properties: map[string]*openapi.Schema{
				"_id":              {Type: "string", Description: "Bot Id"},
				"owner":            {Type: "string", Description: "User Id of the bot owner"},
				"token":            {Type: "string", Description: "Token used to authenticate requests for this bot"},
				"public":           {Type: "boolean", Description: "Whether the bot is public"},
				"analytics":        {Type: "boolean"},
				"discoverable":     {Type: "boolean"},
				"interactions_url": {Type: "string"},
			},
		},
		"PublicBot": {
			Type:     "object",
			Required: []string{"_id", "username"},
			Properties: map[string]*openapi.Schema{
				"_id":         {Type: "string"},
				"username":    {Type: "string"},
				"avatar":      {Type: "string"},
				"description": {Type: "string"},
			},
		},
		"BotResponse": {
			Type:     "object",
			Required: []string{"bot", "user"},
			Properties: map[string]*openapi.Schema{
				"bot":  openapi.SchemaRef("Bot"),
				"user": openapi.SchemaRef("User"),
			},
		},
		"OwnedBotsResponse": {
			Type:     "object",
			Required: []string{"bots", "users"},
			Properties: map[string]*openapi.Schema{
				"bots":  {Type: "array", Items: openapi.SchemaRef("Bot")},
				"users": {Type: "array", Items: openapi.SchemaRef("User")},
			},
		},
		"DataCreateBot": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string", Description: "Bot username"},
			},
		},
		"DataEditBot": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":             {Type: "string"},
				"public":           {Type: "boolean"},
				"analytics":        {Type: "boolean"},
				"interactions_url": {Type: "string"},
				"remove":           {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"InviteBotDestination": {
			Type:        "object",
			Description: "Either a server or a group to add the bot to",
			Properties: map[string]*openapi.Schema{
				"server": {Type: "string"},
				"group":  {Type: "string"},
			},
		},
	}
}
