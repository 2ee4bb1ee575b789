package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers"
	complainthandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/complaint"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
)

type ResidentRouteConfig struct {
	ComplaintHandler     *complainthandlers.Handler
	ProfileHandler       *handlers.ProfileHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupResidentRoutes(engine *gin.Engine, config *ResidentRouteConfig) {
	resident := engine.Group("/api/v1/resident")
	resident.Use(config.AuthMiddleware.RequireAuth(), config.PermissionMiddleware.RequirePermission())
	{
		resident.GET("/profile", config.ProfileHandler.GetProfile)

		resident.POST("/emergencies", config.ComplaintHandler.SubmitEmergency)

		complaints := resident.Group("/complaints")
		{
			// Register specific paths BEFORE parameterized paths to avoid route conflicts
			complaints.POST("", config.ComplaintHandler.Submit)
			complaints.GET("", config.ComplaintHandler.List)

			complaints.GET("/:id/timeline", config.ComplaintHandler.Timeline)
			complaints.GET("/:id/comments", config.ComplaintHandler.ListComments)
			complaints.POST("/:id/comments", config.ComplaintHandler.AddComment)

			complaints.GET("/:id", config.ComplaintHandler.Get)
		}
	}
}
