package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers"
	cataloghandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/catalog"
	complainthandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/complaint"
	notificationhandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/notification"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	ComplaintHandler     *complainthandlers.Handler
	CatalogHandler       *cataloghandlers.Handler
	NotificationHandler  *notificationhandlers.Handler
	ProfileHandler       *handlers.ProfileHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes registers the staff console. Role checks beyond
// authentication are enforced by the permission middleware policies.
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/api/v1/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), config.PermissionMiddleware.RequirePermission())
	{
		admin.GET("/profile", config.ProfileHandler.GetProfile)
		admin.PUT("/profiles", config.ProfileHandler.UpsertProfile)
		admin.GET("/staff", config.ProfileHandler.ListStaff)
		admin.GET("/stats", config.ComplaintHandler.Stats)

		setupAdminComplaintRoutes(admin, config.ComplaintHandler)
		setupAdminCatalogRoutes(admin, config.CatalogHandler)
		setupAdminNotificationRoutes(admin, config.NotificationHandler)
	}
}

func setupAdminComplaintRoutes(admin *gin.RouterGroup, h *complainthandlers.Handler) {
	complaints := admin.Group("/complaints")
	{
		complaints.GET("", h.List)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		complaints.GET("/:id/timeline", h.Timeline)
		complaints.GET("/:id/comments", h.ListComments)
		complaints.POST("/:id/comments", h.AddComment)
		complaints.POST("/:id/triage", h.Triage)
		complaints.POST("/:id/assign", h.Assign)
		complaints.POST("/:id/close", h.Close)
		complaints.GET("/:id/work-orders", h.ListWorkOrders)
		complaints.POST("/:id/visits", h.CreateVisit)

		complaints.GET("/:id", h.Get)
	}

	admin.PATCH("/work-orders/:id", h.PatchWorkOrder)
	admin.PATCH("/visits/:id/checkout", h.CheckoutVisit)
}

func setupAdminCatalogRoutes(admin *gin.RouterGroup, h *cataloghandlers.Handler) {
	notices := admin.Group("/notices")
	{
		notices.GET("", h.ListAdminNotices)
		notices.POST("", h.CreateNotice)
		notices.PATCH("/:id", h.UpdateNotice)
	}

	categories := admin.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.GET("/:id/guidance", h.GetGuidance)
		categories.PUT("/:id/guidance", h.UpsertGuidance)
		categories.PATCH("/:id", h.UpdateCategory)
	}

	faqs := admin.Group("/faqs")
	{
		faqs.GET("", h.ListFAQs)
		faqs.POST("", h.CreateFAQ)
		faqs.PATCH("/:id", h.UpdateFAQ)
	}
}

func setupAdminNotificationRoutes(admin *gin.RouterGroup, h *notificationhandlers.Handler) {
	admin.GET("/notification-templates", h.ListTemplates)
	admin.PUT("/notification-templates", h.UpsertTemplate)

	admin.GET("/notifications", h.ListQueue)
	admin.POST("/notifications/requeue", h.Requeue)
}
