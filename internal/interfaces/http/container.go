package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountUsecases "github.com/ledgerpos/ledgerpos/internal/application/account/usecases"
	adminApp "github.com/ledgerpos/ledgerpos/internal/application/admin"
	adminUsecases "github.com/ledgerpos/ledgerpos/internal/application/admin/usecases"
	auditlogUsecases "github.com/ledgerpos/ledgerpos/internal/application/auditlog/usecases"
	categoryUsecases "github.com/ledgerpos/ledgerpos/internal/application/category/usecases"
	"github.com/ledgerpos/ledgerpos/internal/application/offlinesync"
	"github.com/ledgerpos/ledgerpos/internal/application/planaccess"
	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/auth"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/backend"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/config"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/permission"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/preference"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/pubsub"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/ratelimit"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/scheduler"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers/functions"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/middleware"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/routes"
	"github.com/ledgerpos/ledgerpos/internal/shared/constants"
	sharedDB "github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/services/markdown"
)

const (
	planRefreshInterval = 5 * time.Minute
	jwtTTL              = 12 * time.Hour
	redisNamespace      = "ledgerpos:"
)

// Container holds the agent's infrastructure, stores, use cases, handlers
// and background jobs. It wires everything together and provides Shutdown
// for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories

	// Client state
	modes       *connectivity.ModeStore
	status      *connectivity.Store
	coordinator *upgrade.Coordinator
	broker      *pubsub.Broker
	backend     *backend.Client
	engineSync  *offlinesync.Engine
	planAccess  *planaccess.Service

	authMiddleware *middleware.AuthMiddleware
	planMiddleware *middleware.PlanFeatureMiddleware

	routeConfig *routes.AgentRouteConfig

	schedulerManager *scheduler.SchedulerManager
	unsubscribes     []func()

	shutdownOnce sync.Once
}

// NewContainer builds the agent. ctx bounds the startup probe and the
// preference load.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initConnectivity(ctx)
	c.initPlanAndUpgrade()
	c.initEvents()
	if err := c.initScheduler(); err != nil {
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() {
	c.redis = newRedisClient(&c.cfg.Redis, c.log)
	c.repos = newRepositories(c.db, c.log)
	c.backend = backend.NewClient(backend.Config{
		BaseURL:      c.cfg.Backend.BaseURL,
		APIKey:       c.cfg.Backend.APIKey,
		Timeout:      c.cfg.Backend.Timeout(),
		ProbeTimeout: c.cfg.Connectivity.ProbeTimeout(),
	}, c.log.Named("backend"))
	c.broker = pubsub.NewBroker(c.log.Named("broker"))
}

func (c *Container) preferenceStorage() connectivity.PreferenceStorage {
	if c.cfg.Connectivity.PreferenceBackend == "redis" && c.redis != nil {
		return preference.NewRedisStorage(c.redis, redisNamespace)
	}
	return preference.NewDatabaseStorage(c.repos.settingRepo)
}

func (c *Container) initConnectivity(ctx context.Context) {
	c.modes = connectivity.NewModeStore(ctx, c.preferenceStorage(), c.cfg.Connectivity.StorageKey, c.log.Named("connectivity"))

	mode := c.modes.State()
	reachable := mode == connectivity.ModeOnline && c.backend.Reachable(ctx)
	c.status = connectivity.NewStore(connectivity.InitialState(reachable, mode))

	c.unsubscribes = append(c.unsubscribes, connectivity.Bind(context.Background(), c.modes, c.status, c.backend))

	c.engineSync = offlinesync.NewEngine(
		c.repos.syncOperationRepo,
		c.backend,
		c.modes,
		c.status,
		c.cfg.Business.ID,
		c.cfg.Connectivity.SyncBatchSize,
		c.log.Named("sync"),
	)
}

func (c *Container) initPlanAndUpgrade() {
	c.planAccess = planaccess.NewService(c.backend, c.repos.subscriptionRepo, c.cfg.Business.ID, c.log.Named("plan"))

	c.coordinator = upgrade.NewCoordinator(
		pubsub.NewNavigator(c.broker),
		constants.SubscriptionManagementPath,
		c.log.Named("upgrade"),
		upgrade.WithRenderer(markdown.NewRenderer()),
	)
}

// initEvents mirrors store changes onto the broker for the SSE stream.
func (c *Container) initEvents() {
	c.unsubscribes = append(c.unsubscribes,
		c.modes.Subscribe(func(m connectivity.Mode) {
			c.broker.Publish(pubsub.EventMode, handlers.ModeResponse{Mode: m})
		}),
		c.status.Subscribe(func(s connectivity.State) {
			c.broker.Publish(pubsub.EventStatus, s)
		}),
		c.coordinator.Subscribe(func(s upgrade.State) {
			c.broker.Publish(pubsub.EventUpgrade, s)
		}),
	)
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if err := manager.RegisterSyncJob(scheduler.SyncJob{
		Runner:   c.engineSync,
		Modes:    c.modes,
		Store:    c.status,
		Probe:    c.backend,
		Interval: c.cfg.Connectivity.SyncInterval(),
	}); err != nil {
		return fmt.Errorf("failed to register sync job: %w", err)
	}

	if err := manager.RegisterPlanRefreshJob(c.planAccess, c.backend, planRefreshInterval); err != nil {
		return fmt.Errorf("failed to register plan refresh job: %w", err)
	}

	c.schedulerManager = manager
	return nil
}

func (c *Container) initHandlers() {
	txMgr := sharedDB.NewTransactionManager(c.db)

	listCategoriesUC := categoryUsecases.NewListCategoriesUseCase(c.repos.categoryRepo, c.log)
	createCategoryUC := categoryUsecases.NewCreateCategoryUseCase(
		c.repos.categoryRepo, c.repos.auditLogRepo, c.repos.syncOperationRepo, txMgr, c.engineSync, c.log,
	)
	updateCategoryUC := categoryUsecases.NewUpdateCategoryUseCase(
		c.repos.categoryRepo, c.repos.auditLogRepo, c.repos.syncOperationRepo, txMgr, c.engineSync, c.log,
	)
	listAuditLogsUC := auditlogUsecases.NewListAuditLogsUseCase(c.repos.auditLogRepo, c.log)

	jwtSvc := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer, jwtTTL)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.log)
	c.planMiddleware = middleware.NewPlanFeatureMiddleware(c.planAccess, c.coordinator, c.log)

	c.routeConfig = &routes.AgentRouteConfig{
		HealthHandler: handlers.NewHealthHandler(),
		ConnectivityHandler: handlers.NewConnectivityHandler(
			c.modes, c.status, c.engineSync, c.backend, c.coordinator, c.broker, c.log,
		),
		PlanHandler:     handlers.NewPlanHandler(c.planAccess, c.log),
		UpgradeHandler:  handlers.NewUpgradeHandler(c.coordinator, c.log),
		CategoryHandler: handlers.NewCategoryHandler(listCategoriesUC, createCategoryUC, updateCategoryUC, c.cfg.Business.ID, c.log),
		AuditLogHandler: handlers.NewAuditLogHandler(listAuditLogsUC, c.cfg.Business.ID, c.log),
		AdminHandler:    handlers.NewAdminHandler(c.backend, c.log),
		AuthMiddleware:  c.authMiddleware,
		PlanMiddleware:  c.planMiddleware,
	}
}

// SetupRoutes installs global middleware and the agent API.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	routes.SetupAgentRoutes(c.engine, c.routeConfig)
}

// Engine exposes the gin engine for the HTTP server and tests.
func (c *Container) Engine() http.Handler {
	return c.engine
}

// Start launches the background sync and plan refresh jobs.
func (c *Container) Start() {
	c.schedulerManager.Start()
}

// Shutdown stops background jobs and releases connections. Safe to call more
// than once.
func (c *Container) Shutdown() {
	c.shutdownOnce.Do(func() {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
		for _, unsubscribe := range c.unsubscribes {
			unsubscribe()
		}
		if c.redis != nil {
			if err := c.redis.Close(); err != nil {
				c.log.Warnw("failed to close redis client", "error", err)
			}
		}
		c.log.Info("agent container shut down")
	})
}

// FunctionsContainer wires the hosted functions: username lookup, the admin
// function and the subscription endpoint the agent refreshes from.
type FunctionsContainer struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos       *repositories
	routeConfig *routes.FunctionsRouteConfig
}

func NewFunctionsContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*FunctionsContainer, error) {
	c := &FunctionsContainer{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.redis = newRedisClient(&cfg.Redis, log)
	c.repos = newRepositories(db, log)

	enforcer, err := permission.NewEnforcer(db, log.Named("permission"))
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	authorizer := adminApp.NewAuthorizer(c.repos.profileRepo, enforcer, log)

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis, redisNamespace+"ratelimit:")
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, jwtTTL)

	c.routeConfig = &routes.FunctionsRouteConfig{
		HealthHandler: handlers.NewHealthHandler(),
		UsernameLookupHandler: functions.NewUsernameLookupHandler(
			accountUsecases.NewLookupUsernameUseCase(c.repos.profileRepo, log),
			cfg.Functions.ServiceRoleKey != "",
			log,
		),
		AdminFunctionHandler: functions.NewAdminFunctionHandler(
			adminUsecases.NewCheckSuperAdminUseCase(authorizer, log),
			adminUsecases.NewListSessionsUseCase(c.repos.sessionRepo, authorizer, log),
			adminUsecases.NewRevokeSessionsUseCase(c.repos.sessionRepo, authorizer, log),
			log,
		),
		SubscriptionHandler: functions.NewSubscriptionHandler(c.repos.subscriptionRepo, log),
		AuthMiddleware:      middleware.NewAuthMiddleware(jwtSvc, log),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(limiter, cfg.Functions.LookupRatePerMinute, log),
		ServiceRoleKey:      cfg.Functions.ServiceRoleKey,
	}

	return c, nil
}

// SetupRoutes installs global middleware and /functions/v1.
func (c *FunctionsContainer) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	routes.SetupFunctionsRoutes(c.engine, c.routeConfig)
}

func (c *FunctionsContainer) Engine() http.Handler {
	return c.engine
}

func (c *FunctionsContainer) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
