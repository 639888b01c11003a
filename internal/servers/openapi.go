package servers

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	Create               *openapi.Operation
	Fetch                *openapi.Operation
	Delete               *openapi.Operation
	Edit                 *openapi.Operation
	Acknowledge          *openapi.Operation
	CreateChannel        *openapi.Operation
	FetchMembers         *openapi.Operation
	FetchMember          *openapi.Operation
	EditMember           *openapi.Operation
	KickMember           *openapi.Operation
	FetchBans            *openapi.Operation
	BanUser              *openapi.Operation
	UnbanUser            *openapi.Operation
	FetchInvites         *openapi.Operation
	CreateRole           *openapi.Operation
	EditRole             *openapi.Operation
	DeleteRole           *openapi.Operation
	SetRolePermission    *openapi.Operation
	SetDefaultPermission *openapi.Operation
}

var (
	target = openapi.PathParam("target", "Server ID")
	member = openapi.PathParam("member", "Member ID")
	role   = openapi.PathParam("role_id", "Role ID")
)

// Spec contains OpenAPI operation definitions for the server endpoints.
var Spec = spec{
	Create: &openapi.Operation{
		OperationID: "server_create_req",
		Summary:     "Create Server",
		Description: "Create a new server.",
		Tags:        []string{"Server Information"},
		RequestBody: openapi.RequestBodyJSON("DataCreateServer", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created server", "CreateServerResponse"),
		},
	},
	Fetch: &openapi.Operation{
		OperationID: "server_fetch_req",
		Summary:     "Fetch Server",
		Description: "Fetch a server by its id.",
		Tags:        []string{"Server Information"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Server", "Server"),
			404: openapi.ResponseJSON("Unknown server", "Error"),
		},
	},
	Delete: &openapi.Operation{
		OperationID: "server_delete_req",
		Summary:     "Delete / Leave Server",
		Description: "Deletes a server if owner otherwise leaves.",
		Tags:        []string{"Server Information"},
		Parameters: []*openapi.Parameter{
			target,
			openapi.QueryParam("leave_silently", "boolean", "Whether to not send a leave message", false),
		},
		Responses: map[int]*openapi.Response{204: {Description: "Success"}},
	},
	Edit: &openapi.Operation{
		OperationID: "server_edit_req",
		Summary:     "Edit Server",
		Description: "Edit a server by its id.",
		Tags:        []string{"Server Information"},
		Parameters:  []*openapi.Parameter{target},
		RequestBody: openapi.RequestBodyJSON("DataEditServer", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated server", "Server"),
		},
	},
	Acknowledge: &openapi.Operation{
		OperationID: "server_ack_req",
		Summary:     "Mark Server As Read",
		Description: "Mark all channels in a server as read.",
		Tags:        []string{"Server Information"},
		Parameters:  []*openapi.Parameter{target},
		Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
	},
	CreateChannel: &openapi.Operation{
		OperationID: "channel_create_req",
		Summary:     "Create Channel",
		Description: "Create a new Text or Voice channel.",
		Tags:        []string{"Server Information"},
		Parameters:  []*openapi.Parameter{target},
		RequestBody: openapi.RequestBodyJSON("DataCreateServerChannel", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created channel", "Channel"),
		},
	},
	FetchMembers: &openapi.Operation{
		OperationID: "member_fetch_all_req",
		Summary:     "Fetch Members",
		Description: "Fetch all server members.",
		Tags:        []string{"Server Members"},
		Parameters: []*openapi.Parameter{
			target,
			openapi.QueryParam("exclude_offline", "boolean", "Whether to exclude offline users", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Members and their users", "AllMemberResponse"),
		},
	},
	FetchMember: &openapi.Operation{
		OperationID: "member_fetch_req",
		Summary:     "Fetch Member",
		Description: "Retrieve a member.",
		Tags:        []string{"Server Members"},
		Parameters:  []*openapi.Parameter{target, member},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Member", "Member"),
		},
	},
	EditMember: &openapi.Operation{
		OperationID: "member_edit_req",
		Summary:     "Edit Member",
		Description: "Edit a member by their id.",
		Tags:        []string{"Server Members"},
		Parameters:  []*openapi.Parameter{target, member},
		RequestBody: openapi.RequestBodyJSON("DataMemberEdit", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated member", "Member"),
		},
	},
	KickMember: &openapi.Operation{
		OperationID: "member_remove_req",
		Summary:     "Kick Member",
		Description: "Removes a member from the server.",
		Tags:        []string{"Server Members"},
		Parameters:  []*openapi.Parameter{target, member},
		Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
	},
	FetchBans: &openapi.Operation{
		OperationID: "ban_list_req",
		Summary:     "Fetch Bans",
		Description: "Fetch all bans on a server.",
		Tags:        []string{"Server Members"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Bans", "BanListResult"),
		},
	},
	BanUser: &openapi.Operation{
		OperationID: "ban_create_req",
		Summary:     "Ban User",
		Description: "Ban a user by their id.",
		Tags:        []string{"Server Members"},
		Parameters:  []*openapi.Parameter{target, member},
		RequestBody: openapi.RequestBodyJSON("DataBanCreate", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created ban", "ServerBan"),
		},
	},
	UnbanUser: &openapi.Operation{
		OperationID: "ban_remove_req",
		Summary:     "Unban user",
		Description: "Remove a user's ban.",
		Tags:        []string{"Server Members"},
		Parameters:  []*openapi.Parameter{target, member},
		Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
	},
	FetchInvites: &openapi.Operation{
		OperationID: "invites_fetch_req",
		Summary:     "Fetch Invites",
		Description: "Fetch all server invites.",
		Tags:        []string{"Server Members"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Invites",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Invite")}},
				},
			},
		},
	},
	CreateRole: &openapi.Operation{
		OperationID: "roles_create_req",
		Summary:     "Create Role",
		Description: "Creates a new server role.",
		Tags:        []string{"Server Permissions"},
		Parameters:  []*openapi.Parameter{target},
		RequestBody: openapi.RequestBodyJSON("DataCreateRole", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created role", "NewRoleResponse"),
		},
	},
	EditRole: &openapi.Operation{
		OperationID: "roles_edit_req",
		Summary:     "Edit Role",
		Description: "Edit a role by its id.",
		Tags:        []string{"Server Permissions"},
		Parameters:  []*openapi.Parameter{target, role},
		RequestBody: openapi.RequestBodyJSON("DataEditRole", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated role", "Role"),
		},
	},
	DeleteRole: &openapi.Operation{
		OperationID: "roles_delete_req",
		Summary:     "Delete Role",
		Description: "Delete a server role by its id.",
		Tags:        []string{"Server Permissions"},
		Parameters:  []*openapi.Parameter{target, role},
		Responses:   map[int]*openapi.Response{204: {Description: "Success"}},
	},
	SetRolePermission: &openapi.Operation{
		OperationID: "permissions_set_req_server",
		Summary:     "Set Role Permission",
		Description: "Sets permissions for the specified role in the server.",
		Tags:        []string{"Server Permissions"},
		Parameters:  []*openapi.Parameter{target, role},
		RequestBody: openapi.RequestBodyJSON("DataSetRolePermissions", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated server", "Server"),
		},
	},
	SetDefaultPermission: &openapi.Operation{
		OperationID: "permissions_set_default_req_server",
		Summary:     "Set Default Permission",
		Description: "Sets permissions for the default role in this server.",
		Tags:        []string{"Server Permissions"},
		Parameters:  []*openapi.Parameter{target},
		RequestBody: openapi.RequestBodyJSON("DataPermissionsValue", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated server", "Server"),
		},
	},
}

// Schemas returns the server schemas for OpenAPI components.
// Override and DataSetRolePermissions are shared with channels and
// declared there.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Server": {
			Type:     "object",
			Required: []string{"_id", "owner", "name", "channels", "default_permissions"},
			Properties: map[string]*openapi.Schema{
				"_id":                 {Type: "string"},
				"owner":               {Type: "string"},
				"name":                {Type: "string"},
				"description":         {Type: "string", Nullable: true},
				"channels":            {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"roles":               {Type: "object"},
				"default_permissions": {Type: "integer", Format: "int64"},
				"nsfw":                {Type: "boolean"},
			},
		},
		"CreateServerResponse": {
			Type:     "object",
			Required: []string{"server", "channels"},
			Properties: map[string]*openapi.Schema{
				"server":   openapi.SchemaRef("Server"),
				"channels": {Type: "array", Items: openapi.SchemaRef("Channel")},
			},
		},
		"DataCreateServer": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"nsfw":        {Type: "boolean"},
			},
		},
		"DataEditServer": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"icon":        {Type: "string"},
				"banner":      {Type: "string"},
				"remove":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"DataCreateServerChannel": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"type":        {Type: "string", Enum: []string{"Text", "Voice"}},
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"nsfw":        {Type: "boolean"},
			},
		},
		"Member": {
			Type:     "object",
			Required: []string{"_id", "joined_at"},
			Properties: map[string]*openapi.Schema{
				"_id":       {Type: "object", Description: "Composite key of server and user"},
				"joined_at": {Type: "string", Format: "date-time"},
				"nickname":  {Type: "string", Nullable: true},
				"roles":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"timeout":   {Type: "string", Format: "date-time", Nullable: true},
			},
		},
		"AllMemberResponse": {
			Type:     "object",
			Required: []string{"members", "users"},
			Properties: map[string]*openapi.Schema{
				"members": {Type: "array", Items: openapi.SchemaRef("Member")},
				"users":   {Type: "array", Items: openapi.SchemaRef("User")},
			},
		},
		"DataMemberEdit": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"nickname": {Type: "string"},
				"roles":    {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"timeout":  {Type: "string", Format: "date-time"},
				"remove":   {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"ServerBan": {
			Type:     "object",
			Required: []string{"_id"},
			Properties: map[string]*openapi.Schema{
				"_id":    {Type: "object", Description: "Composite key of server and user"},
				"reason": {Type: "string", Nullable: true},
			},
		},
		"BanListResult": {
			Type:     "object",
			Required: []string{"users", "bans"},
			Properties: map[string]*openapi.Schema{
				"users": {Type: "array", Items: openapi.SchemaRef("User")},
				"bans":  {Type: "array", Items: openapi.SchemaRef("ServerBan")},
			},
		},
		"DataBanCreate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"reason": {Type: "string"},
			},
		},
		"Role": {
			Type:     "object",
			Required: []string{"name", "permissions", "rank"},
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"permissions": openapi.SchemaRef("Override"),
				"colour":      {Type: "string", Nullable: true},
				"hoist":       {Type: "boolean"},
				"rank":        {Type: "integer"},
			},
		},
		"NewRoleResponse": {
			Type:     "object",
			Required: []string{"id", "role"},
			Properties: map[string]*openapi.Schema{
				"id":   {Type: "string"},
				"role": openapi.SchemaRef("Role"),
			},
		},
		"DataCreateRole": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string"},
				"rank": {Type: "integer"},
			},
		},
		"DataEditRole": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":   {Type: "string"},
				"colour": {Type: "string"},
				"hoist":  {Type: "boolean"},
				"rank":   {Type: "integer"},
				"remove": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"DataPermissionsValue": {
			Type:     "object",
			Required: []string{"permissions"},
			Properties: map[string]*openapi.Schema{
				"permissions": {Type: "integer", Format: "int64"},
			},
		},
	}
}
