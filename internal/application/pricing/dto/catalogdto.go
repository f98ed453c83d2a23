package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/domain/pricing"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/mapper"
	"github.com/jaras-platform/jaras/internal/shared/utils"
)

// PlanCardDTO is one plan as shown in the plan picker for a units count.
type PlanCardDTO struct {
	Code                  string    `json:"code"`
	Name                  string    `json:"name"`
	TargetCustomer        string    `json:"target_customer,omitempty"`
	SupportType           string    `json:"support_type,omitempty"`
	YearlyPrice           AmountDTO `json:"yearly_price"`
	DiscountedPrice       AmountDTO `json:"discounted_price"`
	DiscountPercentage    float64   `json:"discount_percentage"`
	SaveBadge             string    `json:"save_badge,omitempty"`
	UnitsQuota            int       `json:"units_quota"`
	AdditionalUnitPrice   AmountDTO `json:"additional_unit_price"`
	Reservations          string    `json:"reservations"`
	UnlimitedReservations bool      `json:"unlimited_reservations"`
	FitsUnits             bool      `json:"fits_units"`
	ExtraUnits            int       `json:"extra_units"`
	ExtraUnitsCost        AmountDTO `json:"extra_units_cost"`
	Recommended           bool      `json:"recommended"`
	IsProfessional        bool      `json:"is_professional"`
}

func (p Presenter) PlanCard(plan *catalog.Plan, units int, recommended *catalog.Plan) PlanCardDTO {
	card := PlanCardDTO{
		Code:                  plan.Code(),
		Name:                  p.text(plan.Name()),
		TargetCustomer:        p.text(plan.TargetCustomer()),
		SupportType:           p.text(plan.SupportType()),
		YearlyPrice:           p.Amount(plan.YearlyPrice()),
		DiscountedPrice:       p.Amount(pricing.DiscountedPrice(plan)),
		DiscountPercentage:    plan.DiscountPercentage().InexactFloat64(),
		UnitsQuota:            plan.UnitsQuota(),
		AdditionalUnitPrice:   p.Amount(plan.AdditionalUnitPrice()),
		UnlimitedReservations: plan.HasUnlimitedReservations(),
		FitsUnits:             pricing.FitsUnits(plan, units),
		ExtraUnits:            pricing.ExtraUnits(plan, units),
		ExtraUnitsCost:        p.Amount(pricing.ExtraUnitsCost(plan, units)),
		Recommended:           recommended != nil && recommended.Code() == plan.Code(),
		IsProfessional:        p.rule.IsProfessional(plan),
	}
	if plan.HasDiscount() {
		card.SaveBadge = p.text(i18n.Save(utils.FormatPercent(plan.DiscountPercentage())))
	}
	if plan.HasUnlimitedReservations() {
		card.Reservations = p.text(i18n.UnlimitedReservation)
	} else {
		card.Reservations = fmt.Sprintf("%s %s", utils.FormatWhole(decimal.NewFromInt(int64(plan.ReservationsQuota()))), p.text(i18n.Reservations))
	}
	return card
}

// AddonDTO is one add-on in the catalog listing.
type AddonDTO struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       AmountDTO `json:"price"`
	PriceLabel  string    `json:"price_label"`
	IsOnetime   bool      `json:"is_onetime"`
	IsOTA       bool      `json:"is_ota"`
}

func (p Presenter) Addon(addon *catalog.Addon) AddonDTO {
	label := i18n.PerYearUnit
	if addon.IsOnetime() {
		label = i18n.OneTime
	}
	return AddonDTO{
		Code:        addon.Code(),
		Name:        p.text(addon.Name()),
		Description: p.text(addon.Description()),
		Price:       p.Amount(addon.ListPrice()),
		PriceLabel:  p.text(label),
		IsOnetime:   addon.IsOnetime(),
		IsOTA:       p.rule.IsOTA(addon),
	}
}

// CatalogDTO is the localized catalog for one units count.
type CatalogDTO struct {
	Lang            string        `json:"lang"`
	Dir             string        `json:"dir"`
	Currency        string        `json:"currency"`
	IncludeVat      bool          `json:"include_vat"`
	UnitsCount      int           `json:"units_count"`
	RecommendedPlan string        `json:"recommended_plan,omitempty"`
	Plans           []PlanCardDTO `json:"plans"`
	Addons          []AddonDTO    `json:"addons"`
	LoadedAt        time.Time     `json:"loaded_at"`
}

func (p Presenter) Catalog(snap *catalog.Snapshot, units int) *CatalogDTO {
	recommended := pricing.RecommendPlan(snap.Plans(), units)
	card := func(plan *catalog.Plan) PlanCardDTO {
		return p.PlanCard(plan, units, recommended)
	}

	out := &CatalogDTO{
		Lang:       string(p.lang),
		Dir:        p.lang.Dir(),
		Currency:   p.text(i18n.Currency),
		IncludeVat: p.vat.IncludeVat(),
		UnitsCount: units,
		Plans:      mapper.MapSlice(snap.Plans(), card),
		Addons:     mapper.MapSlice(snap.Addons(), p.Addon),
		LoadedAt:   snap.LoadedAt(),
	}
	if recommended != nil {
		out.RecommendedPlan = recommended.Code()
	}
	return out
}

// RecommendationDTO is the plan recommended for a units count; Plan is nil
// when the catalog has no plans.
type RecommendationDTO struct {
	UnitsCount int          `json:"units_count"`
	Plan       *PlanCardDTO `json:"plan"`
}

func (p Presenter) Recommendation(snap *catalog.Snapshot, units int) *RecommendationDTO {
	out := &RecommendationDTO{UnitsCount: units}
	if plan := pricing.RecommendPlan(snap.Plans(), units); plan != nil {
		card := p.PlanCard(plan, units, plan)
		out.Plan = &card
	}
	return out
}

// CatalogStatusDTO reports the catalog lifecycle; Error is set only when
// the status is failed.
type CatalogStatusDTO struct {
	Status   string     `json:"status"`
	Error    string     `json:"error,omitempty"`
	Plans    int        `json:"plans"`
	Addons   int        `json:"addons"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}
