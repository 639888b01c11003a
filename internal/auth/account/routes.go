// Package account declares the account management endpoints.
package account

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Routes returns the account route group. The empty pattern addresses the
// mount prefix itself.
func Routes(logger *slog.Logger) routes.Group {
	op := func(name string) http.HandlerFunc {
		return handlers.NotImplemented(logger, "account."+name)
	}

	return routes.Group{
		Name:        "account",
		Tags:        []string{"Account"},
		Description: "Account lifecycle",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: op("fetch"), OpenAPI: Spec.Fetch},
			{Method: "POST", Pattern: "/create", Handler: op("create"), OpenAPI: Spec.Create},
			{Method: "POST", Pattern: "/reverify", Handler: op("reverify"), OpenAPI: Spec.Reverify},
			{Method: "POST", Pattern: "/verify/{code}", Handler: op("verify"), OpenAPI: Spec.Verify},
			{Method: "POST", Pattern: "/reset_password", Handler: op("send_password_reset"), OpenAPI: Spec.SendPasswordReset},
			{Method: "PATCH", Pattern: "/reset_password", Handler: op("password_reset"), OpenAPI: Spec.PasswordReset},
			{Method: "PATCH", Pattern: "/change/password", Handler: op("change_password"), OpenAPI: Spec.ChangePassword},
			{Method: "PATCH", Pattern: "/change/email", Handler: op("change_email"), OpenAPI: Spec.ChangeEmail},
			{Method: "POST", Pattern: "/delete", Handler: op("delete"), OpenAPI: Spec.Delete},
			{Method: "PUT", Pattern: "/delete", Handler: op("confirm_delete"), OpenAPI: Spec.ConfirmDelete},
		},
		Schemas: Spec.Schemas(),
	}
}
