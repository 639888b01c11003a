package api

import (
	"log/slog"

	"github.com/JaimeStill/delta/internal/auth/account"
	"github.com/JaimeStill/delta/internal/auth/session"
	"github.com/JaimeStill/delta/internal/bots"
	"github.com/JaimeStill/delta/internal/channels"
	"github.com/JaimeStill/delta/internal/invites"
	"github.com/JaimeStill/delta/internal/onboard"
	"github.com/JaimeStill/delta/internal/push"
	"github.com/JaimeStill/delta/internal/root"
	"github.com/JaimeStill/delta/internal/servers"
	"github.com/JaimeStill/delta/internal/sync"
	"github.com/JaimeStill/delta/internal/users"
	"github.com/JaimeStill/delta/pkg/apidoc"
	"github.com/JaimeStill/delta/pkg/logging"
	"github.com/JaimeStill/delta/pkg/openapi"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Mounts returns the feature route groups in their documented mount order.
// Order is dispatch priority among equally specific patterns.
func Mounts(logger *slog.Logger, node root.Info) []routes.Mount {
	return []routes.Mount{
		{Prefix: "/", Group: root.Routes(node)},
		{Prefix: "/users", Group: users.Routes(logging.Module(logger, "users"))},
		{Prefix: "/bots", Group: bots.Routes(logging.Module(logger, "bots"))},
		{Prefix: "/channels", Group: channels.Routes(logging.Module(logger, "channels"))},
		{Prefix: "/servers", Group: servers.Routes(logging.Module(logger, "servers"))},
		{Prefix: "/invites", Group: invites.Routes(logging.Module(logger, "invites"))},
		{Prefix: "/auth/account", Group: account.Routes(logging.Module(logger, "account"))},
		{Prefix: "/auth/session", Group: session.Routes(logging.Module(logger, "session"))},
		{Prefix: "/onboard", Group: onboard.Routes(logging.Module(logger, "onboard"))},
		{Prefix: "/push", Group: push.Routes(logging.Module(logger, "push"))},
		{Prefix: "/sync", Group: sync.Routes(logging.Module(logger, "sync"))},
	}
}

// Metadata converts the document configuration into composer metadata.
func Metadata(cfg *openapi.Config) apidoc.Metadata {
	return apidoc.Metadata{
		Info:         cfg.Info(),
		Servers:      cfg.ServerList(),
		ExternalDocs: cfg.Docs(),
		Extensions:   cfg.Extensions(),
	}
}
