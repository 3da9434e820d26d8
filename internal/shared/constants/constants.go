package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContextKeyUserID     = "user_id"
	ContextKeySessionID  = "session_id"
	ContextKeyRequestID  = "request_id"
	ContextKeyPlanAccess = "plan_access"
	ContextKeyUserRole   = "user_role"
	ContextKeyBusinessID = "business_id"
	ContextKeyBearer     = "bearer_token"

	// SubscriptionManagementPath is where "Upgrade now" sends the user.
	SubscriptionManagementPath = "/settings/subscription"

	ErrMsgInternalServerError = "Internal server error occurred"
)
