package dto

import (
	"time"

	"github.com/jaras-platform/jaras/internal/domain/pricing"
	"github.com/jaras-platform/jaras/internal/shared/biztime"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/utils"
)

// LineDTO is one row of a price breakdown.
type LineDTO struct {
	Code     string    `json:"code,omitempty"`
	Label    string    `json:"label"`
	Amount   AmountDTO `json:"amount"`
	Included bool      `json:"included,omitempty"`
	OneTime  bool      `json:"one_time,omitempty"`
	Prorated bool      `json:"prorated,omitempty"`
	Note     string    `json:"note,omitempty"`
}

func (p Presenter) addonLines(charges []pricing.AddonCharge, days int) []LineDTO {
	lines := make([]LineDTO, 0, len(charges))
	for _, c := range charges {
		line := LineDTO{
			Code:     c.Addon.Code(),
			Label:    p.text(c.Addon.Name()),
			Amount:   p.Amount(c.Amount),
			Included: c.Included,
			OneTime:  c.OneTime,
			Prorated: c.Prorated,
		}
		switch {
		case c.Included:
			line.Note = p.text(i18n.Included)
		case c.OneTime:
			line.Note = p.text(i18n.OneTime)
		case c.Prorated:
			line.Note = p.text(i18n.ProratedFor(days))
		default:
			line.Note = p.text(i18n.PerYear)
		}
		lines = append(lines, line)
	}
	return lines
}

type NewCustomerQuoteDTO struct {
	Lang                     string      `json:"lang"`
	Dir                      string      `json:"dir"`
	UnitsCount               int         `json:"units_count"`
	Plan                     *PlanRefDTO `json:"plan"`
	PlanPrice                AmountDTO   `json:"plan_price"`
	PlanDiscountPercentage   float64     `json:"plan_discount_percentage"`
	PlanDiscount             AmountDTO   `json:"plan_discount"`
	PriceAfterPlanDiscount   AmountDTO   `json:"price_after_plan_discount"`
	ManualDiscountPercentage float64     `json:"manual_discount_percentage"`
	ManualDiscount           AmountDTO   `json:"manual_discount"`
	PriceAfterManualDiscount AmountDTO   `json:"price_after_manual_discount"`
	ExtraUnits               int         `json:"extra_units"`
	ExtraUnitsCost           AmountDTO   `json:"extra_units_cost"`
	PlanTotal                AmountDTO   `json:"plan_total"`
	PlanLines                []LineDTO   `json:"plan_lines"`
	Addons                   []LineDTO   `json:"addons"`
	AddonsTotal              AmountDTO   `json:"addons_total"`
	GrandTotal               AmountDTO   `json:"grand_total"`
	Vat                      VatDTO      `json:"vat"`
	BillingNote              string      `json:"billing_note"`
}

func (p Presenter) NewCustomerQuote(q pricing.NewCustomerQuote) *NewCustomerQuoteDTO {
	out := &NewCustomerQuoteDTO{
		Lang:                     string(p.lang),
		Dir:                      p.lang.Dir(),
		UnitsCount:               q.UnitsCount,
		Plan:                     p.PlanRef(q.Plan),
		PlanPrice:                p.Amount(q.PlanPrice),
		PlanDiscount:             p.Amount(q.PlanDiscountAmount),
		PriceAfterPlanDiscount:   p.Amount(q.PriceAfterPlanDiscount),
		ManualDiscountPercentage: q.ManualDiscountPercentage.InexactFloat64(),
		ManualDiscount:           p.Amount(q.ManualDiscountAmount),
		PriceAfterManualDiscount: p.Amount(q.PriceAfterManualDiscount),
		ExtraUnits:               q.ExtraUnits,
		ExtraUnitsCost:           p.Amount(q.ExtraUnitsCost),
		PlanTotal:                p.Amount(q.PlanTotal),
		Addons:                   p.addonLines(q.Addons, 0),
		AddonsTotal:              p.Amount(q.AddonsTotal),
		GrandTotal:               p.Amount(q.GrandTotal),
		Vat:                      p.VatSummary(q.GrandTotal),
		BillingNote:              p.text(i18n.BilledAnnually),
	}

	lines := []LineDTO{}
	if q.Plan != nil {
		out.PlanDiscountPercentage = q.Plan.DiscountPercentage().InexactFloat64()
		lines = append(lines, LineDTO{Code: q.Plan.Code(), Label: p.text(q.Plan.Name()), Amount: out.PlanPrice, Note: p.text(i18n.PerYear)})
	}
	if q.PlanDiscountAmount.IsPositive() {
		lines = append(lines, LineDTO{
			Label:  p.text(i18n.PlanDiscount),
			Amount: p.Amount(q.PlanDiscountAmount.Neg()),
			Note:   utils.FormatPercent(q.Plan.DiscountPercentage()) + "%",
		})
	}
	if q.ManualDiscountAmount.IsPositive() {
		lines = append(lines, LineDTO{
			Label:  p.text(i18n.AdditionalDiscount),
			Amount: p.Amount(q.ManualDiscountAmount.Neg()),
			Note:   utils.FormatPercent(q.ManualDiscountPercentage) + "%",
		})
	}
	if q.ExtraUnits > 0 {
		lines = append(lines, LineDTO{
			Label:  p.text(i18n.ExtraUnitsLine(q.ExtraUnits)),
			Amount: out.ExtraUnitsCost,
		})
	}
	if q.Plan != nil {
		lines = append(lines, LineDTO{Label: p.text(i18n.PlanSubtotal), Amount: out.PlanTotal})
	}
	out.PlanLines = lines
	return out
}

type ExistingCustomerQuoteDTO struct {
	Lang             string      `json:"lang"`
	Dir              string      `json:"dir"`
	CurrentPlan      *PlanRefDTO `json:"current_plan"`
	NewPlan          *PlanRefDTO `json:"new_plan"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	RemainingDays    int         `json:"remaining_days"`
	CurrentPlanPrice AmountDTO   `json:"current_plan_price"`
	NewPlanPrice     AmountDTO   `json:"new_plan_price"`
	PlanDifference   AmountDTO   `json:"plan_difference"`
	ChangeType       string      `json:"change_type"`
	ChangeLabel      string      `json:"change_label"`
	Addons           []LineDTO   `json:"addons"`
	AddonsTotal      AmountDTO   `json:"addons_total"`
	GrandTotal       AmountDTO   `json:"grand_total"`
	Vat              VatDTO      `json:"vat"`
	IsCredit         bool        `json:"is_credit"`
	SettlementNote   string      `json:"settlement_note"`
}

func changeLabel(t pricing.ChangeType) i18n.Text {
	switch t {
	case pricing.ChangeUpgrade:
		return i18n.PlanUpgrade
	case pricing.ChangeDowngrade:
		return i18n.PlanDowngrade
	default:
		return i18n.NoPlanChange
	}
}

func (p Presenter) ExistingCustomerQuote(q pricing.ExistingCustomerQuote) *ExistingCustomerQuoteDTO {
	note := i18n.PaymentDue
	if q.IsCredit() {
		note = i18n.CreditNote
	}

	return &ExistingCustomerQuoteDTO{
		Lang:             string(p.lang),
		Dir:              p.lang.Dir(),
		CurrentPlan:      p.PlanRef(q.CurrentPlan),
		NewPlan:          p.PlanRef(q.NewPlan),
		StartDate:        formatDate(q.StartDate),
		EndDate:          formatDate(q.EndDate),
		RemainingDays:    q.RemainingDays,
		CurrentPlanPrice: p.Amount(q.CurrentPlanPrice),
		NewPlanPrice:     p.Amount(q.NewPlanPrice),
		PlanDifference:   p.Amount(q.PlanDifference),
		ChangeType:       string(q.ChangeType),
		ChangeLabel:      p.text(changeLabel(q.ChangeType)),
		Addons:           p.addonLines(q.Addons, q.RemainingDays),
		AddonsTotal:      p.Amount(q.AddonsTotal),
		GrandTotal:       p.Amount(q.GrandTotal),
		Vat:              p.VatSummary(q.GrandTotal),
		IsCredit:         q.IsCredit(),
		SettlementNote:   p.text(note),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return biztime.FormatDate(t)
}
