package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jaras-platform/jaras/internal/interfaces/http/handlers"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	QuoteHandler   *handlers.QuoteHandler
}

// SetupCatalogRoutes configures catalog and plan recommendation routes.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	catalog := api.Group("/catalog")
	{
		catalog.GET("", cfg.CatalogHandler.GetCatalog)
		catalog.GET("/status", cfg.CatalogHandler.GetCatalogStatus)
		catalog.POST("/reload", cfg.CatalogHandler.ReloadCatalog)
	}

	plans := api.Group("/plans")
	{
		plans.GET("/recommendation", cfg.QuoteHandler.RecommendPlan)
	}
}
