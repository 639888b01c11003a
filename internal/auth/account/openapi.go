package account

import "github.com/JaimeStill/delta/pkg/openapi"

type spec struct {
	Fetch             *openapi.Operation
	Create            *openapi.Operation
	Reverify          *openapi.Operation
	Verify            *openapi.Operation
	SendPasswordReset *openapi.Operation
	PasswordReset     *openapi.Operation
	ChangePassword    *openapi.Operation
	ChangeEmail       *openapi.Operation
	Delete            *openapi.Operation
	ConfirmDelete     *openapi.Operation
}

var noContent = map[int]*openapi.Response{
	204: {Description: "Success"},
}

// Spec contains OpenAPI operation definitions for the account endpoints.
var Spec = spec{
	Fetch: &openapi.Operation{
		OperationID: "fetch_account_fetch_account",
		Summary:     "Fetch Account",
		Description: "Fetch account information from the current session.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Account", "AccountInfo"),
		},
	},
	Create: &openapi.Operation{
		OperationID: "create_account_create_account",
		Summary:     "Create Account",
		Description: "Create a new account.",
		RequestBody: openapi.RequestBodyJSON("DataCreateAccount", true),
		Responses:   noContent,
	},
	Reverify: &openapi.Operation{
		OperationID: "resend_verification_resend_verification",
		Summary:     "Resend Verification",
		Description: "Resend account creation verification email.",
		RequestBody: openapi.RequestBodyJSON("DataResendVerification", true),
		Responses:   noContent,
	},
	Verify: &openapi.Operation{
		OperationID: "verify_email_verify_email",
		Summary:     "Verify Email",
		Description: "Verify an email address.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("code", "Verification code")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Verified", "ResponseVerify"),
		},
	},
	SendPasswordReset: &openapi.Operation{
		OperationID: "send_password_reset_send_password_reset",
		Summary:     "Send Password Reset",
		Description: "Send an email to reset account password.",
		RequestBody: openapi.RequestBodyJSON("DataSendPasswordReset", true),
		Responses:   noContent,
	},
	PasswordReset: &openapi.Operation{
		OperationID: "password_reset_password_reset",
		Summary:     "Password Reset",
		Description: "Confirm password reset and change the password.",
		RequestBody: openapi.RequestBodyJSON("DataPasswordReset", true),
		Responses:   noContent,
	},
	ChangePassword: &openapi.Operation{
		OperationID: "change_password_change_password",
		Summary:     "Change Password",
		Description: "Change the current account password.",
		RequestBody: openapi.RequestBodyJSON("DataChangePassword", true),
		Responses:   noContent,
	},
	ChangeEmail: &openapi.Operation{
		OperationID: "change_email_change_email",
		Summary:     "Change Email",
		Description: "Change the associated account email.",
		RequestBody: openapi.RequestBodyJSON("DataChangeEmail", true),
		Responses:   noContent,
	},
	Delete: &openapi.Operation{
		OperationID: "delete_account_delete_account",
		Summary:     "Delete Account",
		Description: "Request to have an account deleted.",
		Responses:   noContent,
	},
	ConfirmDelete: &openapi.Operation{
		OperationID: "confirm_deletion_confirm_deletion",
		Summary:     "Confirm Account Deletion",
		Description: "Schedule an account for deletion by confirming the received token.",
		RequestBody: openapi.RequestBodyJSON("DataAccountDeletion", true),
		Responses:   noContent,
	},
}

func object(required []string, props map[string]*openapi.Schema) *openapi.Schema {
	return &openapi.Schema{Type: "object", Required: required, Properties: props}
}

// Schemas returns the account schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	str := func() *openapi.Schema { return &openapi.Schema{Type: "string"} }
	password := func() *openapi.Schema { return &openapi.Schema{Type: "string", Format: "password"} }

	return map[string]*openapi.Schema{
		"AccountInfo": object([]string{"_id", "email"}, map[string]*openapi.Schema{
			"_id":   str(),
			"email": {Type: "string", Format: "email"},
		}),
		"DataCreateAccount": object([]string{"email", "password"}, map[string]*openapi.Schema{
			"email":    {Type: "string", Format: "email"},
			"password": password(),
			"invite":   {Type: "string", Nullable: true},
			"captcha":  {Type: "string", Nullable: true},
		}),
		"DataResendVerification": object([]string{"email"}, map[string]*openapi.Schema{
			"email":   {Type: "string", Format: "email"},
			"captcha": {Type: "string", Nullable: true},
		}),
		"ResponseVerify": {
			Type:        "object",
			Description: "Either no content or a ticket for MFA",
			Properties: map[string]*openapi.Schema{
				"ticket": {Type: "object"},
			},
		},
		"DataSendPasswordReset": object([]string{"email"}, map[string]*openapi.Schema{
			"email":   {Type: "string", Format: "email"},
			"captcha": {Type: "string", Nullable: true},
		}),
		"DataPasswordReset": object([]string{"token", "password"}, map[string]*openapi.Schema{
			"token":           str(),
			"password":        password(),
			"remove_sessions": {Type: "boolean"},
		}),
		"DataChangePassword": object([]string{"password", "current_password"}, map[string]*openapi.Schema{
			"password":         password(),
			"current_password": password(),
		}),
		"DataChangeEmail": object([]string{"email", "current_password"}, map[string]*openapi.Schema{
			"email":            {Type: "string", Format: "email"},
			"current_password": password(),
		}),
		"DataAccountDeletion": object([]string{"token"}, map[string]*openapi.Schema{
			"token": str(),
		}),
	}
}
