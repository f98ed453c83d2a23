package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/application/pricing/usecases"
	"github.com/jaras-platform/jaras/internal/interfaces/http/middleware"
	"github.com/jaras-platform/jaras/internal/shared/logger"
	"github.com/jaras-platform/jaras/internal/shared/utils"
)

type QuoteHandler struct {
	quoteNewCustomerUC      quoteNewCustomerUseCase
	quoteExistingCustomerUC quoteExistingCustomerUseCase
	recommendPlanUC         recommendPlanUseCase
	toggleVatUC             toggleVatUseCase
	logger                  logger.Interface
}

func NewQuoteHandler(
	quoteNewCustomerUC quoteNewCustomerUseCase,
	quoteExistingCustomerUC quoteExistingCustomerUseCase,
	recommendPlanUC recommendPlanUseCase,
	toggleVatUC toggleVatUseCase,
	logger logger.Interface,
) *QuoteHandler {
	return &QuoteHandler{
		quoteNewCustomerUC:      quoteNewCustomerUC,
		quoteExistingCustomerUC: quoteExistingCustomerUC,
		recommendPlanUC:         recommendPlanUC,
		toggleVatUC:             toggleVatUC,
		logger:                  logger,
	}
}

// QuoteNewCustomer handles POST /api/quotes/new-customer
func (h *QuoteHandler) QuoteNewCustomer(c *gin.Context) {
	var req NewCustomerQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for new customer quote", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.QuoteNewCustomerCommand{
		Lang:               requestLang(c, req.Lang),
		IncludeVat:         req.IncludeVat,
		UnitsCount:         req.UnitsCount,
		PlanCode:           req.PlanCode,
		AddonCodes:         req.AddonCodes,
		DiscountPercentage: decimal.NewFromFloat(req.DiscountPercentage),
	}

	result, err := h.quoteNewCustomerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// QuoteExistingCustomer handles POST /api/quotes/existing-customer
func (h *QuoteHandler) QuoteExistingCustomer(c *gin.Context) {
	var req ExistingCustomerQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for existing customer quote", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.QuoteExistingCustomerCommand{
		Lang:            requestLang(c, req.Lang),
		IncludeVat:      req.IncludeVat,
		CurrentPlanCode: req.CurrentPlanCode,
		NewPlanCode:     req.NewPlanCode,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		AddonCodes:      req.AddonCodes,
	}

	result, err := h.quoteExistingCustomerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RecommendPlan handles GET /api/plans/recommendation?units=N
func (h *QuoteHandler) RecommendPlan(c *gin.Context) {
	var query RecommendationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warnw("invalid query for plan recommendation", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.recommendPlanUC.Execute(c.Request.Context(), usecases.RecommendPlanQuery{
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

// ToggleVat handles POST /api/vat/toggle. An empty body toggles the
// default setting.
func (h *QuoteHandler) ToggleVat(c *gin.Context) {
	var req ToggleVatRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for vat toggle", "error", err)
			utils.ErrorResponseWithError(c, utils.BindingError(err))
			return
		}
	}

	result := h.toggleVatUC.Execute(usecases.ToggleVatCommand{
		Lang:       requestLang(c, req.Lang),
		IncludeVat: req.IncludeVat,
	})
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
