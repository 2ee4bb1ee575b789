package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/catalog"
)

type PublicRouteConfig struct {
	CatalogHandler *cataloghandlers.Handler
}

// SetupPublicRoutes registers the unauthenticated catalog reads.
func SetupPublicRoutes(engine *gin.Engine, config *PublicRouteConfig) {
	public := engine.Group("/api/v1/public")
	{
		public.GET("/categories", config.CatalogHandler.ListPublicCategories)
		public.GET("/notices", config.CatalogHandler.ListPublicNotices)
		public.GET("/faqs", config.CatalogHandler.ListPublicFAQs)
	}
}
