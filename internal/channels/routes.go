// Package channels declares the channel, messaging, group, and voice endpoints.
package channels

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the channels route group.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "channels."+name)
	}

	return routes.Group{
		Name:        "channels",
		Tags:        []string{"Channel Information"},
		Description: "Channels and messages",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/create", Handler: op("create_group"), OpenAPI: Spec.CreateGroup},
			{Method: "GET", Pattern: "/{target}", Handler: op("fetch"), OpenAPI: Spec.Fetch},
			{Method: "DELETE", Pattern: "/{target}", Handler: op("delete"), OpenAPI: Spec.Delete},
			{Method: "PATCH", Pattern: "/{target}", Handler: op("edit"), OpenAPI: Spec.Edit},
			{Method: "POST", Pattern: "/{target}/invites", Handler: op("create_invite"), OpenAPI: Spec.CreateInvite},
			{Method: "PUT", Pattern: "/{target}/permissions/{role_id}", Handler: op("set_role_permission"), OpenAPI: Spec.SetRolePermission},
			{Method: "PUT", Pattern: "/{target}/permissions/default", Handler: op("set_default_permission"), OpenAPI: Spec.SetDefaultPermission},
			{Method: "PUT", Pattern: "/{target}/ack/{message}", Handler: op("acknowledge"), OpenAPI: Spec.Acknowledge},
			{Method: "GET", Pattern: "/{target}/messages", Handler: op("query_messages"), OpenAPI: Spec.QueryMessages},
			{Method: "POST", Pattern: "/{target}/messages", Handler: op("send_message"), OpenAPI: Spec.SendMessage},
			{Method: "POST", Pattern: "/{target}/search", Handler: op("search_messages"), OpenAPI: Spec.SearchMessages},
			{Method: "GET", Pattern: "/{target}/messages/{msg}", Handler: op("fetch_message"), OpenAPI: Spec.FetchMessage},
			{Method: "PATCH", Pattern: "/{target}/messages/{msg}", Handler: op("edit_message"), OpenAPI: Spec.EditMessage},
			{Method: "DELETE", Pattern: "/{target}/messages/{msg}", Handler: op("delete_message"), OpenAPI: Spec.DeleteMessage},
			{Method: "DELETE", Pattern: "/{target}/messages/bulk", Handler: op("bulk_delete"), OpenAPI: Spec.BulkDelete},
			{Method: "GET", Pattern: "/{target}/members", Handler: op("fetch_members"), OpenAPI: Spec.FetchMembers},
			{Method: "PUT", Pattern: "/{target}/recipients/{member}", Handler: op("add_member"), OpenAPI: Spec.AddMember},
			{Method: "DELETE", Pattern: "/{target}/recipients/{member}", Handler: op("remove_member"), OpenAPI: Spec.RemoveMember},
			{Method: "POST", Pattern: "/{target}/join_call", Handler: op("join_call"), OpenAPI: Spec.JoinCall},
		},
		Schemas: Spec.Schemas(),
	}
}
