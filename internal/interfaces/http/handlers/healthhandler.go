package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaras-platform/jaras/internal/shared/version"
)

type HealthHandler struct {
	catalogStatusUC getCatalogStatusUseCase
}

func NewHealthHandler(catalogStatusUC getCatalogStatusUseCase) *HealthHandler {
	return &HealthHandler{catalogStatusUC: catalogStatusUC}
}

// HealthCheck handles GET /health. The process is healthy while it can
// answer; the catalog state is reported alongside.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
		"catalog": h.catalogStatusUC.Execute(c.Request.Context()),
	})
}
