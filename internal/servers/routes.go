// Package servers declares the server, member, ban, and role endpoints.
package servers

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the servers route group.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "servers."+name)
	}

	return routes.Group{
		Name:        "servers",
		Tags:        []string{"Server Information"},
		Description: "Servers, members and roles",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/create", Handler: op("create"), OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/{target}", Handler: op("fetch"), OpenAPI: Spec.Fetch},
			{Method: "DELETE", Pattern: "/{target}", Handler: op("delete"), OpenAPI: Spec.Delete},
			{Method: "PATCH", Pattern: "/{target}", Handler: op("edit"), OpenAPI: Spec.Edit},
			{Method: "PUT", Pattern: "/{target}/ack", Handler: op("acknowledge"), OpenAPI: Spec.Acknowledge},
			{Method: "POST", Pattern: "/{target}/channels", Handler: op("create_channel"), OpenAPI: Spec.CreateChannel},
			{Method: "GET", Pattern: "/{target}/members", Handler: op("fetch_members"), OpenAPI: Spec.FetchMembers},
			{Method: "GET", Pattern: "/{target}/members/{member}", Handler: op("fetch_member"), OpenAPI: Spec.FetchMember},
			{Method: "PATCH", Pattern: "/{target}/members/{member}", Handler: op("edit_member"), OpenAPI: Spec.EditMember},
			{Method: "DELETE", Pattern: "/{target}/members/{member}", Handler: op("kick_member"), OpenAPI: Spec.KickMember},
			{Method: "GET", Pattern: "/{target}/bans", Handler: op("fetch_bans"), OpenAPI: Spec.FetchBans},
			{Method: "PUT", Pattern: "/{target}/bans/{member}", Handler: op("ban_user"), OpenAPI: Spec.BanUser},
			{Method: "DELETE", Pattern: "/{target}/bans/{member}", Handler: op("unban_user"), OpenAPI: Spec.UnbanUser},
			{Method: "GET", Pattern: "/{target}/invites", Handler: op("fetch_invites"), OpenAPI: Spec.FetchInvites},
			{Method: "POST", Pattern: "/{target}/roles", Handler: op("create_role"), OpenAPI: Spec.CreateRole},
			{Method: "PATCH", Pattern: "/{target}/roles/{role_id}", Handler: op("edit_role"), OpenAPI: Spec.EditRole},
			{Method: "DELETE", Pattern: "/{target}/roles/{role_id}", Handler: op("delete_role"), OpenAPI: Spec.DeleteRole},
			{Method: "PUT", Pattern: "/{target}/permissions/{role_id}", Handler: op("set_role_permission"), OpenAPI: Spec.SetRolePermission},
			{Method: "PUT", Pattern: "/{target}/permissions/default", Handler: op("set_default_permission"), OpenAPI: Spec.SetDefaultPermission},
		},
		Schemas: Spec.Schemas(),
	}
}
