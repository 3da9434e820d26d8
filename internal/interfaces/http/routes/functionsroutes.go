package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers/functions"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/middleware"
)

// FunctionsRouteConfig holds dependencies for the hosted functions.
type FunctionsRouteConfig struct {
	HealthHandler         *handlers.HealthHandler
	UsernameLookupHandler *functions.UsernameLookupHandler
	AdminFunctionHandler  *functions.AdminFunctionHandler
	SubscriptionHandler   *functions.SubscriptionHandler
	AuthMiddleware        *middleware.AuthMiddleware
	RateLimitMiddleware   *middleware.RateLimitMiddleware
	ServiceRoleKey        string
}

// SetupFunctionsRoutes configures /functions/v1.
func SetupFunctionsRoutes(engine *gin.Engine, cfg *FunctionsRouteConfig) {
	engine.GET("/healthz", cfg.HealthHandler.Health)

	fn := engine.Group("/functions/v1")
	{
		fn.POST("/username-lookup",
			cfg.RateLimitMiddleware.Limit("username-lookup"),
			cfg.UsernameLookupHandler.Lookup,
		)
		fn.POST("/admin", cfg.AuthMiddleware.RequireFunctionAuth(), cfg.AdminFunctionHandler.Handle)
		fn.GET("/subscription", middleware.RequireServiceKey(cfg.ServiceRoleKey), cfg.SubscriptionHandler.Get)
	}
}
