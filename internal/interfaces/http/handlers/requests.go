package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jaras-platform/jaras/internal/interfaces/http/middleware"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// CatalogQuery is bound from the query string of GET /api/catalog.
type CatalogQuery struct {
	IncludeVat *bool `form:"include_vat"`
	Units      int   `form:"units" binding:"omitempty,min=1"`
}

// RecommendationQuery is bound from GET /api/plans/recommendation.
type RecommendationQuery struct {
	IncludeVat *bool `form:"include_vat"`
	Units      int   `form:"units" binding:"required,min=1"`
}

type NewCustomerQuoteRequest struct {
	Lang       string `json:"lang" binding:"omitempty,oneof=en ar"`
	IncludeVat *bool  `json:"include_vat"`
	UnitsCount int    `json:"units_count" binding:"required,min=1"`
	PlanCode   string `json:"plan_code" binding:"omitempty,max=64"`
	// AddonCodes omitted keeps the plan's default add-ons; [] selects none.
	AddonCodes         []string `json:"addon_codes" binding:"omitempty,dive,required,max=64"`
	DiscountPercentage float64  `json:"discount_percentage" binding:"gte=0,lte=100"`
}

type ExistingCustomerQuoteRequest struct {
	Lang            string   `json:"lang" binding:"omitempty,oneof=en ar"`
	IncludeVat      *bool    `json:"include_vat"`
	CurrentPlanCode string   `json:"current_plan_code" binding:"omitempty,max=64"`
	NewPlanCode     string   `json:"new_plan_code" binding:"omitempty,max=64"`
	StartDate       string   `json:"start_date" binding:"omitempty,date"`
	EndDate         string   `json:"end_date" binding:"omitempty,date"`
	AddonCodes      []string `json:"addon_codes" binding:"omitempty,dive,required,max=64"`
}

type ToggleVatRequest struct {
	Lang       string `json:"lang" binding:"omitempty,oneof=en ar"`
	IncludeVat *bool  `json:"include_vat"`
}

// requestLang prefers an explicit body field over what the Language
// middleware negotiated.
func requestLang(c *gin.Context, bodyLang string) i18n.Lang {
	if lang, ok := i18n.ParseLang(bodyLang); ok {
		return lang
	}
	return middleware.LangFrom(c)
}
