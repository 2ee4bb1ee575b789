package http

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUsecases "github.com/sitedesk/sitedesk/internal/application/catalog/usecases"
	notificationUsecases "github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/infrastructure/auth"
	"github.com/sitedesk/sitedesk/internal/infrastructure/cache"
	"github.com/sitedesk/sitedesk/internal/infrastructure/config"
	"github.com/sitedesk/sitedesk/internal/infrastructure/metrics"
	"github.com/sitedesk/sitedesk/internal/infrastructure/permission"
	"github.com/sitedesk/sitedesk/internal/infrastructure/scheduler"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
	shareddb "github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and provides Shutdown for graceful
// termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	sqlDB  *sql.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	txManager *shareddb.TransactionManager
	metrics   *metrics.Metrics

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Access control
	enforcer             *permission.Enforcer
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware

	// Background services
	dispatchScheduler *scheduler.DispatchScheduler
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Metrics, Repositories
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Access control - token verification, role policies
	if err := c.initAccessControl(); err != nil {
		c.closeRedis()
		return nil, err
	}

	// Section 4: Handlers
	c.initHandlers()

	// Section 5: Background services
	c.dispatchScheduler = scheduler.NewDispatchScheduler(c.ucs.dispatchUC, cfg.Notification.DispatchInterval, log)

	return c, nil
}

func (c *Container) initInfrastructure() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	c.sqlDB = sqlDB

	if c.cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(c.cfg.Redis, c.log)
		if err != nil {
			return err
		}
		c.redis = client
	} else {
		c.log.Infow("redis disabled, using in-process category cache and database sequence")
	}

	c.txManager = shareddb.NewTransactionManager(c.db)
	c.metrics = metrics.New()
	c.repos = newRepositories(c.db, c.redis, c.cfg, c.log)
	return nil
}

func (c *Container) initAccessControl() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.EnsureDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	verifier := auth.NewJWTVerifier(c.cfg.Auth.JWTSecret, c.cfg.Auth.Issuer)
	c.authMiddleware = middleware.NewAuthMiddleware(verifier, c.ucs.resolveActorUC, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)
	return nil
}

// DispatchScheduler returns the periodic notification dispatcher.
func (c *Container) DispatchScheduler() *scheduler.DispatchScheduler {
	return c.dispatchScheduler
}

// DispatchNotifications returns the single-pass dispatch use case.
func (c *Container) DispatchNotifications() notificationUsecases.DispatchExecutor {
	return c.ucs.dispatchUC
}

// SeedCatalog returns the catalog seed use case.
func (c *Container) SeedCatalog() catalogUsecases.SeedCatalogExecutor {
	return c.ucs.seedCatalogUC
}

// Shutdown stops background services and releases connections owned by the
// container. The database is closed by the caller.
func (c *Container) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		c.dispatchScheduler.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		c.log.Warnw("timed out waiting for dispatch scheduler to stop")
	}

	c.closeRedis()
}

func (c *Container) closeRedis() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	c.redis = nil
}
