package http

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appcatalog "github.com/jaras-platform/jaras/internal/application/catalog"
	catalogUsecases "github.com/jaras-platform/jaras/internal/application/catalog/usecases"
	pricingUsecases "github.com/jaras-platform/jaras/internal/application/pricing/usecases"
	"github.com/jaras-platform/jaras/internal/infrastructure/ratelimit"
	"github.com/jaras-platform/jaras/internal/interfaces/http/handlers"
	"github.com/jaras-platform/jaras/internal/interfaces/http/middleware"
	"github.com/jaras-platform/jaras/internal/interfaces/http/routes"
	sharedConfig "github.com/jaras-platform/jaras/internal/shared/config"
	"github.com/jaras-platform/jaras/internal/shared/logger"
	"github.com/jaras-platform/jaras/internal/shared/utils"
)

var _ catalogUsecases.CatalogProvider = (*appcatalog.Provider)(nil)

// Dependencies are the long-lived collaborators built by the server
// command.
type Dependencies struct {
	Server   sharedConfig.ServerConfig
	Settings pricingUsecases.Settings
	Provider catalogUsecases.CatalogProvider
	// Limiter is nil when rate limiting is disabled. Fallback decides when
	// Limiter errors.
	Limiter  ratelimit.Limiter
	Fallback ratelimit.Limiter
	Logger   logger.Interface
}

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	deps           Dependencies
	catalogHandler *handlers.CatalogHandler
	quoteHandler   *handlers.QuoteHandler
	healthHandler  *handlers.HealthHandler
}

var bindingOnce sync.Once

func configureBinding() {
	bindingOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			utils.ConfigureValidator(v)
		}
	})
}

func NewRouter(deps Dependencies) *Router {
	configureBinding()

	log := deps.Logger
	statusUC := catalogUsecases.NewGetCatalogStatusUseCase(deps.Provider)

	catalogHandler := handlers.NewCatalogHandler(
		catalogUsecases.NewGetCatalogUseCase(deps.Provider, deps.Settings, log.Named("catalog")),
		statusUC,
		catalogUsecases.NewReloadCatalogUseCase(deps.Provider, log.Named("catalog")),
		log.Named("handler.catalog"),
	)

	quoteHandler := handlers.NewQuoteHandler(
		pricingUsecases.NewQuoteNewCustomerUseCase(deps.Provider, deps.Settings, log.Named("quote")),
		pricingUsecases.NewQuoteExistingCustomerUseCase(deps.Provider, deps.Settings, log.Named("quote")),
		pricingUsecases.NewRecommendPlanUseCase(deps.Provider, deps.Settings, log.Named("quote")),
		pricingUsecases.NewToggleVatUseCase(deps.Settings),
		log.Named("handler.quote"),
	)

	return &Router{
		engine:         gin.New(),
		deps:           deps,
		catalogHandler: catalogHandler,
		quoteHandler:   quoteHandler,
		healthHandler:  handlers.NewHealthHandler(statusUC),
	}
}

func (r *Router) SetupRoutes() {
	log := r.deps.Logger

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Metrics())
	r.engine.Use(middleware.CORS(r.deps.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Language())

	r.engine.GET("/health", r.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api")
	if r.deps.Limiter != nil {
		api.Use(middleware.RateLimit(r.deps.Limiter, r.deps.Fallback, log))
	}
	api.Use(middleware.ErrorHandler(log))

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		CatalogHandler: r.catalogHandler,
		QuoteHandler:   r.quoteHandler,
	})
	routes.SetupQuoteRoutes(api, &routes.QuoteRouteConfig{
		QuoteHandler: r.quoteHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
