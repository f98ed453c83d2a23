package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jaras-platform/jaras/internal/interfaces/http/handlers"
)

// QuoteRouteConfig holds dependencies for quote routes.
type QuoteRouteConfig struct {
	QuoteHandler *handlers.QuoteHandler
}

// SetupQuoteRoutes configures the quote calculators and the VAT toggle.
func SetupQuoteRoutes(api *gin.RouterGroup, cfg *QuoteRouteConfig) {
	quotes := api.Group("/quotes")
	{
		quotes.POST("/new-customer", cfg.QuoteHandler.QuoteNewCustomer)
		quotes.POST("/existing-customer", cfg.QuoteHandler.QuoteExistingCustomer)
	}

	api.POST("/vat/toggle", cfg.QuoteHandler.ToggleVat)
}
