package users

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	FetchSelf         *openapi.Operation
	EditUser          *openapi.Operation
	ChangeUsername    *openapi.Operation
	FetchDMs          *openapi.Operation
	SendFriendRequest *openapi.Operation
	FetchUser         *openapi.Operation
	FetchProfile      *openapi.Operation
	DefaultAvatar     *openapi.Operation
	OpenDM            *openapi.Operation
	FindMutual        *openapi.Operation
	AddFriend         *openapi.Operation
	RemoveFriend      *openapi.Operation
	BlockUser         *openapi.Operation
	UnblockUser       *openapi.Operation
}

var target = openapi.PathParam("target", "User ID")

// Spec contains OpenAPI operation definitions for all user endpoints.
var Spec = spec{
	FetchSelf: &openapi.Operation{
		OperationID: "fetch_self_req",
		Summary:     "Fetch Self",
		Description: "Retrieve your user information.",
		Tags:        []string{"User Information"},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Current user", "User"),
		},
	},
	EditUser: &openapi.Operation{
		OperationID: "edit_user_req",
		Summary:     "Edit User",
		Description: "Edit your user object.",
		Tags:        []string{"User Information"},
		RequestBody: openapi.RequestBodyJSON("DataEditUser", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated user", "User"),
			400: openapi.ResponseJSON("Invalid changes", "Error"),
		},
	},
	ChangeUsername: &openapi.Operation{
		OperationID: "change_username_req",
		Summary:     "Change Username",
		Description: "Change your username.",
		Tags:        []string{"User Information"},
		RequestBody: openapi.RequestBodyJSON("DataChangeUsername", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated user", "User"),
			409: openapi.ResponseJSON("Username taken", "Error"),
		},
	},
	FetchDMs: &openapi.Operation{
		OperationID: "fetch_dms_req",
		Summary:     "Fetch Direct Message Channels",
		Description: "This fetches your direct messages, including any DM and group DM conversations.",
		Tags:        []string{"Direct Messaging"},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Direct message channels",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Channel")}},
				},
			},
		},
	},
	SendFriendRequest: &openapi.Operation{
		OperationID: "send_friend_request_req",
		Summary:     "Send Friend Request",
		Description: "Send a friend request to another user.",
		Tags:        []string{"Relationships"},
		RequestBody: openapi.RequestBodyJSON("DataSendFriendRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Target user", "User"),
		},
	},
	FetchUser: &openapi.Operation{
		OperationID: "fetch_user_req",
		Summary:     "Fetch User",
		Description: "Retrieve a user's information.",
		Tags:        []string{"User Information"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("User", "User"),
			404: openapi.ResponseJSON("Unknown user", "Error"),
		},
	},
	FetchProfile: &openapi.Operation{
		OperationID: "fetch_profile_req",
		Summary:     "Fetch User Profile",
		Description: "Retrieve a user's profile data.",
		Tags:        []string{"User Information"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("User profile", "UserProfile"),
		},
	},
	DefaultAvatar: &openapi.Operation{
		OperationID: "get_default_avatar_req",
		Summary:     "Fetch Default Avatar",
		Description: "This returns a default avatar based on the given id.",
		Tags:        []string{"User Information"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Default avatar",
				Content: map[string]*openapi.MediaType{
					"image/png": {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
		},
	},
	OpenDM: &openapi.Operation{
		OperationID: "open_dm_req",
		Summary:     "Open Direct Message",
		Description: "Open a DM with another user. If the target is oneself, a saved messages channel is returned.",
		Tags:        []string{"Direct Messaging"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Direct message channel", "Channel"),
		},
	},
	FindMutual: &openapi.Operation{
		OperationID: "find_mutual_req",
		Summary:     "Fetch Mutual Friends And Servers",
		Description: "Retrieve a list of mutual friends and servers with another user.",
		Tags:        []string{"Relationships"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Mutual friends and servers", "MutualResponse"),
		},
	},
	AddFriend: &openapi.Operation{
		OperationID: "add_friend_req",
		Summary:     "Accept Friend Request",
		Description: "Accept another user's friend request.",
		Tags:        []string{"Relationships"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Target user", "User"),
		},
	},
	RemoveFriend: &openapi.Operation{
		OperationID: "remove_friend_req",
		Summary:     "Deny Friend Request / Remove Friend",
		Description: "Denies another user's friend request or removes an existing friend.",
		Tags:        []string{"Relationships"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Target user", "User"),
		},
	},
	BlockUser: &openapi.Operation{
		OperationID: "block_user_req",
		Summary:     "Block User",
		Description: "Block another user by their id.",
		Tags:        []string{"Relationships"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Target user", "User"),
		},
	},
	UnblockUser: &openapi.Operation{
		OperationID: "unblock_user_req",
		Summary:     "Unblock User",
		Description: "Unblock another user by their id.",
		Tags:        []string{"Relationships"},
		Parameters:  []*openapi.Parameter{target},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Target user", "User"),
		},
	},
}

// Schemas returns the user domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"User": {
			Type:     "object",
			Required: []string{"_id", "username", "discriminator"},
			Properties: map[string]*openapi.Schema{
				"_id":           {Type: "string", Description: "Unique Id"},
				"username":      {Type: "string"},
				"discriminator": {Type: "string"},
				"display_name":  {Type: "string", Nullable: true},
				"relationship":  {Type: "string", Enum: []string{"None", "User", "Friend", "Outgoing", "Incoming", "Blocked", "BlockedOther"}},
				"online":        {Type: "boolean"},
			},
		},
		"UserProfile": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"content":    {Type: "string", Nullable: true},
				"background": {Type: "object", Nullable: true},
			},
		},
		"DataEditUser": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"display_name": {Type: "string"},
				"status":       {Type: "object"},
				"profile":      {Type: "object"},
				"remove":       {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"DataChangeUsername": {
			Type:     "object",
			Required: []string{"username", "password"},
			Properties: map[string]*openapi.Schema{
				"username": {Type: "string"},
				"password": {Type: "string", Format: "password"},
			},
		},
		"DataSendFriendRequest": {
			Type:     "object",
			Required: []string{"username"},
			Properties: map[string]*openapi.Schema{
				"username": {Type: "string", Example: "revolt#0001"},
			},
		},
		"MutualResponse": {
			Type:     "object",
			Required: []string{"users", "servers"},
			Properties: map[string]*openapi.Schema{
				"users":   {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"servers": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
	}
}
