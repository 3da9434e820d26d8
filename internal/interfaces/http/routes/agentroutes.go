package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/middleware"
)

// AgentRouteConfig holds dependencies for the edge agent API.
type AgentRouteConfig struct {
	HealthHandler       *handlers.HealthHandler
	ConnectivityHandler *handlers.ConnectivityHandler
	PlanHandler         *handlers.PlanHandler
	UpgradeHandler      *handlers.UpgradeHandler
	CategoryHandler     *handlers.CategoryHandler
	AuditLogHandler     *handlers.AuditLogHandler
	AdminHandler        *handlers.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	PlanMiddleware      *middleware.PlanFeatureMiddleware
}

// SetupAgentRoutes configures the agent API the POS web app talks to.
func SetupAgentRoutes(engine *gin.Engine, cfg *AgentRouteConfig) {
	engine.GET("/healthz", cfg.HealthHandler.Health)

	api := engine.Group("/api/v1")

	connectivity := api.Group("/connectivity")
	{
		connectivity.GET("/mode", cfg.ConnectivityHandler.GetMode)
		connectivity.PUT("/mode", cfg.ConnectivityHandler.SetMode)
		connectivity.GET("/status", cfg.ConnectivityHandler.GetStatus)
		connectivity.GET("/events", cfg.ConnectivityHandler.Events)
		connectivity.POST("/sync", cfg.ConnectivityHandler.Sync)
	}

	planGroup := api.Group("/plan")
	{
		planGroup.GET("/access", cfg.PlanHandler.GetAccess)
		planGroup.POST("/refresh", cfg.PlanHandler.RefreshAccess)
		planGroup.GET("/gates/:feature", cfg.PlanHandler.GetGate)
		planGroup.GET("/limits/:key", cfg.PlanHandler.CheckLimit)
	}

	upgrade := api.Group("/upgrade")
	{
		upgrade.GET("", cfg.UpgradeHandler.GetState)
		upgrade.POST("/open", cfg.UpgradeHandler.Open)
		upgrade.POST("/close", cfg.UpgradeHandler.Close)
		upgrade.POST("/confirm", cfg.UpgradeHandler.Confirm)
		upgrade.POST("/dismiss", cfg.UpgradeHandler.Dismiss)
	}

	categories := api.Group("/categories")
	categories.Use(cfg.AuthMiddleware.RequireAuth())
	categories.Use(cfg.PlanMiddleware.RequireFeature(plan.FeatureCategories))
	{
		categories.GET("", cfg.CategoryHandler.ListCategories)
		categories.POST("", cfg.CategoryHandler.CreateCategory)
		categories.PATCH("/:id", cfg.CategoryHandler.UpdateCategory)
	}

	auditLogs := api.Group("/audit-logs")
	auditLogs.Use(cfg.AuthMiddleware.RequireAuth())
	auditLogs.Use(cfg.PlanMiddleware.RequirePlan(plan.NamePro))
	auditLogs.Use(cfg.PlanMiddleware.RequireFeature(plan.FeatureAuditLogsFull))
	{
		auditLogs.GET("", cfg.AuditLogHandler.ListAuditLogs)
	}

	api.GET("/admin/status", cfg.AuthMiddleware.OptionalAuth(), cfg.AdminHandler.GetStatus)
}
