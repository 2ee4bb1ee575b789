package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/sitedesk/sitedesk/docs"
	"github.com/sitedesk/sitedesk/internal/infrastructure/config"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/routes"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{
		engine:    container.engine,
		container: container,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container
	h := c.hdlrs

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Metrics(c.metrics))

	r.engine.GET("/health", h.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(c.metrics.Handler()))
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		CatalogHandler: h.catalogHandler,
	})

	routes.SetupResidentRoutes(r.engine, &routes.ResidentRouteConfig{
		ComplaintHandler:     h.complaintHandler,
		ProfileHandler:       h.profileHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		ComplaintHandler:     h.complaintHandler,
		CatalogHandler:       h.catalogHandler,
		NotificationHandler:  h.notificationHandler,
		ProfileHandler:       h.profileHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupInternalRoutes(r.engine, &routes.InternalRouteConfig{
		NotificationHandler:  h.notificationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Container exposes the wired dependencies to the CLI.
func (r *Router) Container() *Container {
	return r.container
}

// StartScheduler starts the in-process notification dispatch loop.
func (r *Router) StartScheduler(ctx context.Context) {
	r.container.dispatchScheduler.Start(ctx)
}

// Shutdown gracefully stops background services owned by the router.
func (r *Router) Shutdown(ctx context.Context) {
	r.container.Shutdown(ctx)
}
