package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/notification"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
)

type InternalRouteConfig struct {
	NotificationHandler  *notificationhandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupInternalRoutes registers the delivery worker endpoints used by an
// external dispatcher in place of the in-process scheduler.
func SetupInternalRoutes(engine *gin.Engine, config *InternalRouteConfig) {
	notifications := engine.Group("/api/v1/internal/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth(), config.PermissionMiddleware.RequirePermission())
	{
		notifications.POST("/claim", config.NotificationHandler.Claim)
		notifications.POST("/requeue", config.NotificationHandler.Requeue)
		notifications.POST("/:id/report", config.NotificationHandler.Report)
	}
}
