package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

// NewCustomerInput is everything needed to price a first subscription.
type NewCustomerInput struct {
	Plan                     *catalog.Plan
	Addons                   []*catalog.Addon
	Selected                 AddonSet
	UnitsCount               int
	ManualDiscountPercentage decimal.Decimal
	Rule                     BundlingRule
}

// NewCustomerQuote holds VAT-inclusive amounts; VAT display is applied by
// the caller.
type NewCustomerQuote struct {
	Plan                     *catalog.Plan
	UnitsCount               int
	ExtraUnits               int
	ExtraUnitsCost           decimal.Decimal
	PlanPrice                decimal.Decimal
	PlanDiscountAmount       decimal.Decimal
	PriceAfterPlanDiscount   decimal.Decimal
	ManualDiscountPercentage decimal.Decimal
	ManualDiscountAmount     decimal.Decimal
	PriceAfterManualDiscount decimal.Decimal
	PlanTotal                decimal.Decimal
	Addons                   []AddonCharge
	AddonsTotal              decimal.Decimal
	GrandTotal               decimal.Decimal
}

// QuoteNewCustomer prices the plan, extra units, both discounts and the
// selected add-ons. Discounts apply to the plan's yearly price only:
//
//	planTotal  = yearlyPrice × (1 − plan%) × (1 − manual%) + extraUnitsCost
//	grandTotal = planTotal + addonsTotal
func QuoteNewCustomer(in NewCustomerInput) NewCustomerQuote {
	units := in.UnitsCount
	if units < 0 {
		units = 0
	}
	manual := ClampPercent(in.ManualDiscountPercentage)

	q := NewCustomerQuote{
		Plan:                     in.Plan,
		UnitsCount:               units,
		ManualDiscountPercentage: manual,
		ExtraUnitsCost:           decimal.Zero,
		PlanPrice:                decimal.Zero,
		PlanDiscountAmount:       decimal.Zero,
		PriceAfterPlanDiscount:   decimal.Zero,
		ManualDiscountAmount:     decimal.Zero,
		PriceAfterManualDiscount: decimal.Zero,
		PlanTotal:                decimal.Zero,
	}

	if in.Plan == nil {
		q.AddonsTotal = decimal.Zero
		q.GrandTotal = decimal.Zero
		return q
	}

	q.ExtraUnits = ExtraUnits(in.Plan, units)
	q.ExtraUnitsCost = ExtraUnitsCost(in.Plan, units)
	q.PlanPrice = in.Plan.YearlyPrice()
	q.PriceAfterPlanDiscount = catalog.ApplyDiscount(q.PlanPrice, ClampPercent(in.Plan.DiscountPercentage()))
	q.PlanDiscountAmount = q.PlanPrice.Sub(q.PriceAfterPlanDiscount)
	q.PriceAfterManualDiscount = catalog.ApplyDiscount(q.PriceAfterPlanDiscount, manual)
	q.ManualDiscountAmount = q.PriceAfterPlanDiscount.Sub(q.PriceAfterManualDiscount)
	q.PlanTotal = q.PriceAfterManualDiscount.Add(q.ExtraUnitsCost)

	q.Addons = ChargeAddons(in.Plan, in.Addons, in.Selected, in.Rule, FullTerm())
	q.AddonsTotal = SumCharges(q.Addons)
	q.GrandTotal = q.PlanTotal.Add(q.AddonsTotal)
	return q
}
