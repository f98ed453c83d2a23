package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

// ChangeType classifies a plan change by yearly list price.
type ChangeType string

const (
	ChangeUpgrade   ChangeType = "upgrade"
	ChangeDowngrade ChangeType = "downgrade"
	ChangeNone      ChangeType = "none"
)

func ClassifyChange(current, next *catalog.Plan) ChangeType {
	if current == nil || next == nil {
		return ChangeNone
	}
	switch next.YearlyPrice().Cmp(current.YearlyPrice()) {
	case 1:
		return ChangeUpgrade
	case -1:
		return ChangeDowngrade
	default:
		return ChangeNone
	}
}

// ExistingCustomerInput describes a mid-term plan change.
type ExistingCustomerInput struct {
	CurrentPlan *catalog.Plan
	NewPlan     *catalog.Plan
	StartDate   time.Time
	EndDate     time.Time
	Addons      []*catalog.Addon
	Selected    AddonSet
	Rule        BundlingRule
}

type ExistingCustomerQuote struct {
	CurrentPlan      *catalog.Plan
	NewPlan          *catalog.Plan
	StartDate        time.Time
	EndDate          time.Time
	RemainingDays    int
	CurrentPlanPrice decimal.Decimal
	NewPlanPrice     decimal.Decimal
	PlanDifference   decimal.Decimal
	ChangeType       ChangeType
	Addons           []AddonCharge
	AddonsTotal      decimal.Decimal
	GrandTotal       decimal.Decimal
}

// IsCredit reports whether the settlement is owed to the customer.
func (q ExistingCustomerQuote) IsCredit() bool {
	return q.GrandTotal.IsNegative()
}

// QuoteExistingCustomer prorates the plan difference and the recurring
// add-ons of the new plan over the remaining days of the term.
func QuoteExistingCustomer(in ExistingCustomerInput) ExistingCustomerQuote {
	days := RemainingDays(in.StartDate, in.EndDate)

	q := ExistingCustomerQuote{
		CurrentPlan:      in.CurrentPlan,
		NewPlan:          in.NewPlan,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		RemainingDays:    days,
		CurrentPlanPrice: DiscountedPrice(in.CurrentPlan),
		NewPlanPrice:     DiscountedPrice(in.NewPlan),
		PlanDifference:   PlanDifference(in.CurrentPlan, in.NewPlan, days),
		ChangeType:       ClassifyChange(in.CurrentPlan, in.NewPlan),
	}

	q.Addons = ChargeAddons(in.NewPlan, in.Addons, in.Selected, in.Rule, ProratedTerm(days))
	q.AddonsTotal = SumCharges(q.Addons)
	q.GrandTotal = q.PlanDifference.Add(q.AddonsTotal)
	return q
}
