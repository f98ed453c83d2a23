package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogUsecases "github.com/jaras-platform/jaras/internal/application/catalog/usecases"
	"github.com/jaras-platform/jaras/internal/interfaces/http/middleware"
	"github.com/jaras-platform/jaras/internal/shared/logger"
	"github.com/jaras-platform/jaras/internal/shared/utils"
)

type CatalogHandler struct {
	getCatalogUC       getCatalogUseCase
	getCatalogStatusUC getCatalogStatusUseCase
	reloadCatalogUC    reloadCatalogUseCase
	logger             logger.Interface
}

func NewCatalogHandler(
	getCatalogUC getCatalogUseCase,
	getCatalogStatusUC getCatalogStatusUseCase,
	reloadCatalogUC reloadCatalogUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		getCatalogUC:       getCatalogUC,
		getCatalogStatusUC: getCatalogStatusUC,
		reloadCatalogUC:    reloadCatalogUC,
		logger:             logger,
	}
}

// GetCatalog handles GET /api/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	var query CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warnw("invalid query for get catalog", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.getCatalogUC.Execute(c.Request.Context(), catalogUsecases.GetCatalogQuery{
		Lang:       middleware.LangFrom(c),
		IncludeVat: query.IncludeVat,
		UnitsCount: query.Units,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCatalogStatus handles GET /api/catalog/status. It reports failed and
// loading states with 200 so clients can tell them apart.
func (h *CatalogHandler) GetCatalogStatus(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.getCatalogStatusUC.Execute(c.Request.Context()))
}

// ReloadCatalog handles POST /api/catalog/reload
func (h *CatalogHandler) ReloadCatalog(c *gin.Context) {
	result, err := h.reloadCatalogUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Catalog reloaded successfully", result)
}
