package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

const (
	DefaultProfessionalPlanCode = "P-0026"
	DefaultOTAAddonCode         = "ota_registration"
)

// BundlingRule identifies the plan that bundles add-ons and the add-on that
// stays chargeable under it.
type BundlingRule struct {
	ProfessionalPlanCode string
	OTAAddonCode         string
}

func DefaultBundlingRule() BundlingRule {
	return BundlingRule{
		ProfessionalPlanCode: DefaultProfessionalPlanCode,
		OTAAddonCode:         DefaultOTAAddonCode,
	}
}

func (r BundlingRule) IsProfessional(plan *catalog.Plan) bool {
	return plan != nil && plan.Code() == r.ProfessionalPlanCode
}

func (r BundlingRule) IsOTA(addon *catalog.Addon) bool {
	return addon != nil && addon.Code() == r.OTAAddonCode
}

// SelectionFor is the add-on selection applied when plan becomes the
// selected plan: every non-OTA add-on for the professional plan, nothing
// otherwise.
func (r BundlingRule) SelectionFor(plan *catalog.Plan, addons []*catalog.Addon) AddonSet {
	set := AddonSet{}
	if !r.IsProfessional(plan) {
		return set
	}
	for _, a := range addons {
		if !r.IsOTA(a) {
			set.Add(a.Code())
		}
	}
	return set
}

// AddonSet is a set of selected add-on codes.
type AddonSet map[string]struct{}

func NewAddonSet(codes ...string) AddonSet {
	s := make(AddonSet, len(codes))
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

func (s AddonSet) Add(code string)    { s[code] = struct{}{} }
func (s AddonSet) Remove(code string) { delete(s, code) }

func (s AddonSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Toggle flips membership and reports whether code is now selected.
func (s AddonSet) Toggle(code string) bool {
	if s.Has(code) {
		s.Remove(code)
		return false
	}
	s.Add(code)
	return true
}

func (s AddonSet) Clone() AddonSet {
	out := make(AddonSet, len(s))
	for c := range s {
		out.Add(c)
	}
	return out
}

// Codes lists the selected codes in catalog order.
func (s AddonSet) Codes(addons []*catalog.Addon) []string {
	codes := make([]string, 0, len(s))
	for _, a := range addons {
		if s.Has(a.Code()) {
			codes = append(codes, a.Code())
		}
	}
	return codes
}

// AddonTerm controls how recurring add-ons are charged.
type AddonTerm struct {
	prorated bool
	days     int
}

// FullTerm charges the full yearly price.
func FullTerm() AddonTerm { return AddonTerm{} }

// ProratedTerm charges recurring add-ons for the remaining days only.
func ProratedTerm(days int) AddonTerm {
	return AddonTerm{prorated: true, days: days}
}

func (t AddonTerm) IsProrated() bool { return t.prorated }
func (t AddonTerm) Days() int        { return t.days }

func (t AddonTerm) apply(yearly decimal.Decimal) decimal.Decimal {
	if !t.prorated {
		return yearly
	}
	return Prorate(yearly, t.days)
}

// AddonCharge is one selected add-on line.
type AddonCharge struct {
	Addon    *catalog.Addon
	Included bool
	OneTime  bool
	Prorated bool
	Amount   decimal.Decimal
}

// ChargeAddons prices the selected add-ons in catalog order. Under the
// professional plan every add-on except OTA is included at no charge; OTA
// is charged at its list price and never prorated.
func ChargeAddons(plan *catalog.Plan, addons []*catalog.Addon, selected AddonSet, rule BundlingRule, term AddonTerm) []AddonCharge {
	professional := rule.IsProfessional(plan)
	charges := make([]AddonCharge, 0, len(selected))

	for _, a := range addons {
		if a == nil || !selected.Has(a.Code()) {
			continue
		}

		charge := AddonCharge{Addon: a, Amount: decimal.Zero}
		switch {
		case professional && !rule.IsOTA(a):
			charge.Included = true
		case professional, a.IsOnetime():
			charge.OneTime = a.IsOnetime() || professional
			charge.Amount = a.ListPrice()
		default:
			charge.Prorated = term.IsProrated()
			charge.Amount = term.apply(a.YearlyPrice())
		}
		charges = append(charges, charge)
	}
	return charges
}

// SumCharges totals the amounts of the given lines.
func SumCharges(charges []AddonCharge) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		total = total.Add(c.Amount)
	}
	return total
}

// ChargeableCount counts lines that are not included in the plan.
func ChargeableCount(charges []AddonCharge) int {
	n := 0
	for _, c := range charges {
		if !c.Included {
			n++
		}
	}
	return n
}
