// Package users declares the user, direct message, and relationship endpoints.
package users

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the users route group.
// The "@me" and "dms" literals are declared alongside "{target}" and win
// over it at dispatch.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "users."+name)
	}

	return routes.Group{
		Name:        "users",
		Tags:        []string{"User Information"},
		Description: "Users, direct messages and relationships",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/@me", Handler: op("fetch_self"), OpenAPI: Spec.FetchSelf},
			{Method: "PATCH", Pattern: "/@me", Handler: op("edit_user"), OpenAPI: Spec.EditUser},
			{Method: "PATCH", Pattern: "/@me/username", Handler: op("change_username"), OpenAPI: Spec.ChangeUsername},
			{Method: "GET", Pattern: "/dms", Handler: op("fetch_dms"), OpenAPI: Spec.FetchDMs},
			{Method: "POST", Pattern: "/friend", Handler: op("send_friend_request"), OpenAPI: Spec.SendFriendRequest},
			{Method: "GET", Pattern: "/{target}", Handler: op("fetch_user"), OpenAPI: Spec.FetchUser},
			{Method: "GET", Pattern: "/{target}/profile", Handler: op("fetch_profile"), OpenAPI: Spec.FetchProfile},
			{Method: "GET", Pattern: "/{target}/default_avatar", Handler: op("get_default_avatar"), OpenAPI: Spec.DefaultAvatar},
			{Method: "GET", Pattern: "/{target}/dm", Handler: op("open_dm"), OpenAPI: Spec.OpenDM},
			{Method: "GET", Pattern: "/{target}/mutual", Handler: op("find_mutual"), OpenAPI: Spec.FindMutual},
			{Method: "PUT", Pattern: "/{target}/friend", Handler: op("add_friend"), OpenAPI: Spec.AddFriend},
			{Method: "DELETE", Pattern: "/{target}/friend", Handler: op("remove_friend"), OpenAPI: Spec.RemoveFriend},
			{Method: "PUT", Pattern: "/{target}/block", Handler: op("block_user"), OpenAPI: Spec.BlockUser},
			{Method: "DELETE", Pattern: "/{target}/block", Handler: op("unblock_user"), OpenAPI: Spec.UnblockUser},
		},
		Schemas: Spec.Schemas(),
	}
}
