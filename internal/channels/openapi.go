package channels

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	Fetch                *openapi.Operation
	Delete               *openapi.Operation
	Edit                 *openapi.Operation
	CreateInvite         *openapi.Operation
	SetRolePermission    *openapi.Operation
	SetDefaultPermission *openapi.Operation
	Acknowledge          *openapi.Operation
	QueryMessages        *openapi.Operation
	SendMessage          *openapi.Operation
	SearchMessages       *openapi.Operation
	BulkDelete           *openapi.Operation
	FetchMessage         *openapi.Operation
	EditMessage          *openapi.Operation
	DeleteMessage        *openapi.Operation
	CreateGroup          *openapi.Operation
	FetchMembers         *openapi.Operation
	AddMember            *openapi.Operation
	RemoveMember         *openapi.Operation
	JoinCall             *openapi.Operation
}

var (
	target  = openapi.PathParam("target", "Channel ID")
	message = openapi.PathParam("msg", "Message ID")
)

var noContent = map[int]*openapi.Response{
	204: {Description: "Success"},
}

// Spec contains OpenAPI operation definitions for the channel endpoints.
// Path parameters left undeclared are filled in when the document is composed.
var Spec = spec{
	Fetch: &openapi.Operation{
		OperationID: "channel_fetch_req",
		Summary:     "Fetch Channel",
		Description: "Fetch channel by its id.",
		Tags:        []string{"Channel Information"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Channel", "Channel"),
			404: openapi.ResponseJSON("Unknown channel", "Error"),
		},
	},
	Delete: &openapi.Operation{
		OperationID: "channel_delete_req",
		Summary:     "Close Channel",
		Description: "Deletes a server channel, leaves a group or closes a group.",
		Tags:        []string{"Channel Information"},
		Parameters: []*openapi.Parameter{
			target,
			openapi.QueryParam("leave_silently", "boolean", "Whether to not send a leave message", false),
		},
		Responses: noContent,
	},
	Edit: &openapi.Operation{
		OperationID: "channel_edit_req",
		Summary:     "Edit Channel",
		Description: "Edit a channel object by its id.",
		Tags:        []string{"Channel Information"},
		RequestBody: openapi.RequestBodyJSON("DataEditChannel", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated channel", "Channel"),
		},
	},
	CreateInvite: &openapi.Operation{
		OperationID: "invite_create_req",
		Summary:     "Create Invite",
		Description: "Creates an invite to this channel. Channel must be a TextChannel.",
		Tags:        []string{"Channel Invites"},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created invite", "Invite"),
		},
	},
	SetRolePermission: &openapi.Operation{
		OperationID: "permissions_set_req",
		Summary:     "Set Role Permission",
		Description: "Sets permissions for the specified role in this channel.",
		Tags:        []string{"Channel Permissions"},
		RequestBody: openapi.RequestBodyJSON("DataSetRolePermissions", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated channel", "Channel"),
		},
	},
	SetDefaultPermission: &openapi.Operation{
		OperationID: "permissions_set_default_req",
		Summary:     "Set Default Permission",
		Description: "Sets permissions for the default role in this channel.",
		Tags:        []string{"Channel Permissions"},
		RequestBody: openapi.RequestBodyJSON("DataDefaultChannelPermissions", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated channel", "Channel"),
		},
	},
	Acknowledge: &openapi.Operation{
		OperationID: "channel_ack_req",
		Summary:     "Acknowledge Message",
		Description: "Lets the server and all other clients know that we've seen this message id in this channel.",
		Tags:        []string{"Messaging"},
		Responses:   noContent,
	},
	QueryMessages: &openapi.Operation{
		OperationID: "message_query_req",
		Summary:     "Fetch Messages",
		Description: "Fetch multiple messages.",
		Tags:        []string{"Messaging"},
		Parameters: []*openapi.Parameter{
			target,
			openapi.QueryParam("limit", "integer", "Maximum number of messages to fetch", false),
			openapi.QueryParam("before", "string", "Message id before which messages should be fetched", false),
			openapi.QueryParam("after", "string", "Message id after which messages should be fetched", false),
			openapi.QueryParam("sort", "string", "Message sort direction", false),
			openapi.QueryParam("nearby", "string", "Message id to search around", false),
			openapi.QueryParam("include_users", "boolean", "Whether to include user (and member, if server channel) objects", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Messages", "BulkMessageResponse"),
		},
	},
	SendMessage: &openapi.Operation{
		OperationID: "message_send_message_send",
		Summary:     "Send Message",
		Description: "Sends a message to the given channel.",
		Tags:        []string{"Messaging"},
		Parameters: []*openapi.Parameter{
			target,
			{Name: "Idempotency-Key", In: "header", Description: "Unique key to prevent duplicate requests", Schema: &openapi.Schema{Type: "string"}},
		},
		RequestBody: openapi.RequestBodyJSON("DataMessageSend", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sent message", "Message"),
		},
	},
	SearchMessages: &openapi.Operation{
		OperationID: "message_search_req",
		Summary:     "Search for Messages",
		Description: "This route searches for messages within the given parameters.",
		Tags:        []string{"Messaging"},
		RequestBody: openapi.RequestBodyJSON("DataMessageSearch", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Matching messages", "BulkMessageResponse"),
		},
	},
	BulkDelete: &openapi.Operation{
		OperationID: "message_bulk_delete_req",
		Summary:     "Bulk Delete Messages",
		Description: "Delete multiple messages you've sent or one you have permission to delete.",
		Tags:        []string{"Messaging"},
		RequestBody: openapi.RequestBodyJSON("OptionsBulkDelete", true),
		Responses:   noContent,
	},
	FetchMessage: &openapi.Operation{
		OperationID: "message_fetch_req",
		Summary:     "Fetch Message",
		Description: "Retrieves a message by its id.",
		Tags:        []string{"Messaging"},
		Parameters:  []*openapi.Parameter{target, message},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Message", "Message"),
		},
	},
	EditMessage: &openapi.Operation{
		OperationID: "message_edit_req",
		Summary:     "Edit Message",
		Description: "Edits a message that you've previously sent.",
		Tags:        []string{"Messaging"},
		Parameters:  []*openapi.Parameter{target, message},
		RequestBody: openapi.RequestBodyJSON("DataEditMessage", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated message", "Message"),
		},
	},
	DeleteMessage: &openapi.Operation{
		OperationID: "message_delete_req",
		Summary:     "Delete Message",
		Description: "Delete a message you've sent or one you have permission to delete.",
		Tags:        []string{"Messaging"},
		Parameters:  []*openapi.Parameter{target, message},
		Responses:   noContent,
	},
	CreateGroup: &openapi.Operation{
		OperationID: "group_create_req",
		Summary:     "Create Group",
		Description: "Create a new group channel.",
		Tags:        []string{"Groups"},
		RequestBody: openapi.RequestBodyJSON("DataCreateGroup", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created group", "Channel"),
		},
	},
	FetchMembers: &openapi.Operation{
		OperationID: "members_fetch_req",
		Summary:     "Fetch Group Members",
		Description: "Retrieves all users who are part of this group.",
		Tags:        []string{"Groups"},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Group members",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("User")}},
				},
			},
		},
	},
	AddMember: &openapi.Operation{
		OperationID: "group_add_member_req",
		Summary:     "Add Member to Group",
		Description: "Adds another user to the group.",
		Tags:        []string{"Groups"},
		Responses:   noContent,
	},
	RemoveMember: &openapi.Operation{
		OperationID: "group_remove_member_req",
		Summary:     "Remove Member from Group",
		Description: "Removes a user from the group.",
		Tags:        []string{"Groups"},
		Responses:   noContent,
	},
	JoinCall: &openapi.Operation{
		OperationID: "voice_join_req",
		Summary:     "Join Call",
		Description: "Asks the voice server for a token to join the call.",
		Tags:        []string{"Voice"},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Voice token", "CreateVoiceUserResponse"),
		},
	},
}

// Schemas returns the channel and message schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Channel": {
			Type:     "object",
			Required: []string{"channel_type", "_id"},
			Properties: map[string]*openapi.Schema{
				"channel_type": {Type: "string", Enum: []string{"SavedMessages", "DirectMessage", "Group", "TextChannel", "VoiceChannel"}},
				"_id":          {Type: "string"},
				"name":         {Type: "string"},
				"owner":        {Type: "string"},
				"server":       {Type: "string"},
				"recipients":   {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"nsfw":         {Type: "boolean"},
			},
		},
		"DataEditChannel": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"owner":       {Type: "string"},
				"icon":        {Type: "string"},
				"nsfw":        {Type: "boolean"},
				"archived":    {Type: "boolean"},
				"remove":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"DataSetRolePermissions": {
			Type:     "object",
			Required: []string{"permissions"},
			Properties: map[string]*openapi.Schema{
				"permissions": openapi.SchemaRef("Override"),
			},
		},
		"DataDefaultChannelPermissions": {
			Type:     "object",
			Required: []string{"permissions"},
			Properties: map[string]*openapi.Schema{
				"permissions": openapi.SchemaRef("Override"),
			},
		},
		"Override": {
			Type:        "object",
			Description: "Representation of a single permission override",
			Required:    []string{"allow", "deny"},
			Properties: map[string]*openapi.Schema{
				"allow": {Type: "integer", Format: "int64"},
				"deny":  {Type: "integer", Format: "int64"},
			},
		},
		"Message": {
			Type:     "object",
			Required: []string{"_id", "channel", "author"},
			Properties: map[string]*openapi.Schema{
				"_id":     {Type: "string"},
				"nonce":   {Type: "string", Nullable: true},
				"channel": {Type: "string"},
				"author":  {Type: "string"},
				"content": {Type: "string", Nullable: true},
				"edited":  {Type: "string", Format: "date-time", Nullable: true},
				"replies": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"BulkMessageResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"messages": {Type: "array", Items: openapi.SchemaRef("Message")},
				"users":    {Type: "array", Items: openapi.SchemaRef("User")},
			},
		},
		"DataMessageSend": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"nonce":       {Type: "string"},
				"content":     {Type: "string"},
				"attachments": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"replies":     {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
		},
		"DataMessageSearch": {
			Type:     "object",
			Required: []string{"query"},
			Properties: map[string]*openapi.Schema{
				"query":         {Type: "string"},
				"limit":         {Type: "integer"},
				"before":        {Type: "string"},
				"after":         {Type: "string"},
				"sort":          {Type: "string", Enum: []string{"Relevance", "Latest", "Oldest"}},
				"include_users": {Type: "boolean"},
			},
		},
		"DataEditMessage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"content": {Type: "string"},
				"embeds":  {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
		},
		"OptionsBulkDelete": {
			Type:     "object",
			Required: []string{"ids"},
			Properties: map[string]*openapi.Schema{
				"ids": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"DataCreateGroup": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"users":       {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"nsfw":        {Type: "boolean"},
			},
		},
		"CreateVoiceUserResponse": {
			Type:     "object",
			Required: []string{"token"},
			Properties: map[string]*openapi.Schema{
				"token": {Type: "string"},
			},
		},
	}
}
