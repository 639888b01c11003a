package api

import "github.com/JaimeStill/delta/pkg/openapi"

// Tags is the documentation tag set, in declaration order.
var Tags = []openapi.Tag{
	{Name: "Core", Description: "Use in your applications to determine information about the Revolt node"},
	{Name: "User Information", Description: "Query and fetch users on Revolt"},
	{Name: "Direct Messaging", Description: "Direct message other users on Revolt"},
	{Name: "Relationships", Description: "Manage your friendships and block list on the platform"},
	{Name: "Bots", Description: "Create and edit bots"},
	{Name: "Channel Information", Description: "Query and fetch channels on Revolt"},
	{Name: "Channel Invites", Description: "Create and manage invites for channels"},
	{Name: "Channel Permissions", Description: "Manage permissions for channels"},
	{Name: "Messaging", Description: "Send and manipulate messages"},
	{Name: "Groups", Description: "Create, invite users and manipulate groups"},
	{Name: "Voice", Description: "Join and talk with other users"},
	{Name: "Server Information", Description: "Query and fetch servers on Revolt"},
	{Name: "Server Members", Description: "Find and edit server members"},
	{Name: "Server Permissions", Description: "Manage permissions for servers"},
	{Name: "Invites", Description: "View, join and delete invites"},
	{Name: "Account", Description: "Manage your account"},
	{Name: "Session", Description: "Create and manage sessions"},
	{Name: "Onboarding", Description: "After signing up to Revolt, users must pick a unique username"},
	{Name: "Sync", Description: "Upload and retrieve any JSON data between clients"},
	{Name: "Web Push", Description: "Subscribe to and receive Revolt push notifications while offline"},
}

// TagGroups is the two-level navigation over Tags.
var TagGroups = []openapi.TagGroup{
	{Name: "Revolt", Tags: []string{"Core"}},
	{Name: "Users", Tags: []string{"User Information", "Direct Messaging", "Relationships"}},
	{Name: "Bots", Tags: []string{"Bots"}},
	{Name: "Channels", Tags: []string{
		"Channel Information",
		"Channel Invites",
		"Channel Permissions",
		"Messaging",
		"Groups",
		"Voice",
	}},
	{Name: "Servers", Tags: []string{"Server Information", "Server Members", "Server Permissions"}},
	{Name: "Invites", Tags: []string{"Invites"}},
	{Name: "Authentication", Tags: []string{"Account", "Session", "Onboarding"}},
	{Name: "Miscellaneous", Tags: []string{"Sync", "Web Push"}},
}
