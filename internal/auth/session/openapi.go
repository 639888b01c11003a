package session

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	Login     *openapi.Operation
	Logout    *openapi.Operation
	FetchAll  *openapi.Operation
	RevokeAll *openapi.Operation
	Edit      *openapi.Operation
	Revoke    *openapi.Operation
}

var id = openapi.PathParam("id", "Session ID")

// Spec contains OpenAPI operation definitions for the session endpoints.
var Spec = spec{
	Login: &openapi.Operation{
		OperationID: "login_login",
		Summary:     "Login",
		Description: "Login to an account.",
		RequestBody: openapi.RequestBodyJSON("DataLogin", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session or MFA challenge", "ResponseLogin"),
			401: openapi.ResponseJSON("Invalid credentials", "Error"),
		},
	},
	Logout: &openapi.Operation{
		OperationID: "logout_logout",
		Summary:     "Logout",
		Description: "Delete current session.",
		Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
	},
	FetchAll: &openapi.Operation{
		OperationID: "fetch_all_fetch_all",
		Summary:     "Fetch Sessions",
		Description: "Fetch all sessions associated with this account.",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Sessions",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("SessionInfo")}},
				},
			},
		},
	},
	RevokeAll: &openapi.Operation{
		OperationID: "revoke_all_revoke_all",
		Summary:     "Delete All Sessions",
		Description: "Delete all active sessions, optionally including current one.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("revoke_self", "boolean", "Whether to revoke current session too", false),
		},
		Responses: map[int]*openapi.Response{204: {Description: "Success"}},
	},
	Edit: &openapi.Operation{
		OperationID: "edit_edit",
		Summary:     "Edit Session",
		Description: "Edit current session information.",
		Parameters:  []*openapi.Parameter{id},
		RequestBody: openapi.RequestBodyJSON("DataEditSession", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated session", "SessionInfo"),
		},
	},
	Revoke: &openapi.Operation{
		OperationID: "revoke_revoke",
		Summary:     "Revoke Session",
		Description: "Delete a specific active session.",
		Parameters:  []*openapi.Parameter{id},
		Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
	},
}

// Schemas returns the session schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"DataLogin": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"email":         {Type: "string", Format: "email"},
				"password":      {Type: "string", Format: "password"},
				"mfa_ticket":    {Type: "string"},
				"mfa_response":  {Type: "object"},
				"friendly_name": {Type: "string"},
			},
		},
		"ResponseLogin": {
			Type:     "object",
			Required: []string{"result"},
			Properties: map[string]*openapi.Schema{
				"result":  {Type: "string", Enum: []string{"Success", "MFA", "Disabled"}},
				"_id":     {Type: "string"},
				"user_id": {Type: "string"},
				"token":   {Type: "string"},
				"name":    {Type: "string"},
				"ticket":  {Type: "string"},
			},
		},
		"SessionInfo": {
			Type:     "object",
			Required: []string{"_id", "name"},
			Properties: map[string]*openapi.Schema{
				"_id":  {Type: "string"},
				"name": {Type: "string"},
			},
		},
		"DataEditSession": {
			Type:     "object",
			Required: []string{"friendly_name"},
			Properties: map[string]*openapi.Schema{
				"friendly_name": {Type: "string"},
			},
		},
	}
}
