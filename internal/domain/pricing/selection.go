package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/shared/biztime"
)

func samePlan(a, b *catalog.Plan) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Code() == b.Code()
}

func validateCodes(snap *catalog.Snapshot, codes []string) error {
	for _, c := range codes {
		if _, err := snap.AddonByCode(c); err != nil {
			return err
		}
	}
	return nil
}

// NewCustomerSelection is the mutable configuration of a new-customer
// quote. Changing the units count re-runs the plan recommendation and
// replaces any plan picked before; a plan picked afterwards sticks until
// the units change again.
type NewCustomerSelection struct {
	snapshot *catalog.Snapshot
	rule     BundlingRule
	units    int
	discount decimal.Decimal
	plan     *catalog.Plan
	addons   AddonSet
}

// StartNewCustomer creates a selection for one unit with the recommended
// plan and its default add-ons.
func StartNewCustomer(snap *catalog.Snapshot, rule BundlingRule) *NewCustomerSelection {
	s := &NewCustomerSelection{
		snapshot: snap,
		rule:     rule,
		discount: decimal.Zero,
		addons:   AddonSet{},
	}
	s.SetUnits(1)
	return s
}

// SetUnits clamps n to at least 1 and re-runs the recommendation.
func (s *NewCustomerSelection) SetUnits(n int) {
	if n < 1 {
		n = 1
	}
	s.units = n
	s.setPlan(RecommendPlan(s.snapshot.Plans(), n))
}

func (s *NewCustomerSelection) SelectPlan(code string) error {
	p, err := s.snapshot.PlanByCode(code)
	if err != nil {
		return err
	}
	s.setPlan(p)
	return nil
}

func (s *NewCustomerSelection) setPlan(p *catalog.Plan) {
	if samePlan(s.plan, p) {
		return
	}
	s.plan = p
	s.addons = s.rule.SelectionFor(p, s.snapshot.Addons())
}

// ToggleAddon flips one add-on and reports whether it is now selected.
func (s *NewCustomerSelection) ToggleAddon(code string) (bool, error) {
	if _, err := s.snapshot.AddonByCode(code); err != nil {
		return false, err
	}
	return s.addons.Toggle(code), nil
}

// SetAddons replaces the add-on selection.
func (s *NewCustomerSelection) SetAddons(codes []string) error {
	if err := validateCodes(s.snapshot, codes); err != nil {
		return err
	}
	s.addons = NewAddonSet(codes...)
	return nil
}

// SetDiscount sets the manual discount, clamped to [0, 100].
func (s *NewCustomerSelection) SetDiscount(percent decimal.Decimal) {
	s.discount = ClampPercent(percent)
}

func (s *NewCustomerSelection) Units() int                { return s.units }
func (s *NewCustomerSelection) Plan() *catalog.Plan       { return s.plan }
func (s *NewCustomerSelection) Discount() decimal.Decimal { return s.discount }
func (s *NewCustomerSelection) Addons() AddonSet          { return s.addons.Clone() }

func (s *NewCustomerSelection) Quote() NewCustomerQuote {
	return QuoteNewCustomer(NewCustomerInput{
		Plan:                     s.plan,
		Addons:                   s.snapshot.Addons(),
		Selected:                 s.addons,
		UnitsCount:               s.units,
		ManualDiscountPercentage: s.discount,
		Rule:                     s.rule,
	})
}

// ExistingCustomerSelection is the mutable configuration of a mid-term
// plan change. Both plans start at the first catalog plan.
type ExistingCustomerSelection struct {
	snapshot *catalog.Snapshot
	rule     BundlingRule
	current  *catalog.Plan
	next     *catalog.Plan
	start    time.Time
	end      time.Time
	addons   AddonSet
}

// StartExistingCustomer creates a selection whose term runs termMonths from
// start.
func StartExistingCustomer(snap *catalog.Snapshot, rule BundlingRule, start time.Time, termMonths int) *ExistingCustomerSelection {
	start = biztime.StartOfDay(start)
	s := &ExistingCustomerSelection{
		snapshot: snap,
		rule:     rule,
		current:  snap.FirstPlan(),
		start:    start,
		end:      biztime.AddMonths(start, termMonths),
		addons:   AddonSet{},
	}
	s.setNewPlan(snap.FirstPlan())
	return s
}

func (s *ExistingCustomerSelection) SelectCurrentPlan(code string) error {
	p, err := s.snapshot.PlanByCode(code)
	if err != nil {
		return err
	}
	s.current = p
	return nil
}

func (s *ExistingCustomerSelection) SelectNewPlan(code string) error {
	p, err := s.snapshot.PlanByCode(code)
	if err != nil {
		return err
	}
	s.setNewPlan(p)
	return nil
}

func (s *ExistingCustomerSelection) setNewPlan(p *catalog.Plan) {
	if samePlan(s.next, p) {
		return
	}
	s.next = p
	s.addons = s.rule.SelectionFor(p, s.snapshot.Addons())
}

func (s *ExistingCustomerSelection) SetStartDate(t time.Time) { s.start = biztime.StartOfDay(t) }
func (s *ExistingCustomerSelection) SetEndDate(t time.Time)   { s.end = biztime.StartOfDay(t) }

func (s *ExistingCustomerSelection) ToggleAddon(code string) (bool, error) {
	if _, err := s.snapshot.AddonByCode(code); err != nil {
		return false, err
	}
	return s.addons.Toggle(code), nil
}

func (s *ExistingCustomerSelection) SetAddons(codes []string) error {
	if err := validateCodes(s.snapshot, codes); err != nil {
		return err
	}
	s.addons = NewAddonSet(codes...)
	return nil
}

func (s *ExistingCustomerSelection) CurrentPlan() *catalog.Plan { return s.current }
func (s *ExistingCustomerSelection) NewPlan() *catalog.Plan     { return s.next }
func (s *ExistingCustomerSelection) StartDate() time.Time       { return s.start }
func (s *ExistingCustomerSelection) EndDate() time.Time         { return s.end }
func (s *ExistingCustomerSelection) Addons() AddonSet           { return s.addons.Clone() }

func (s *ExistingCustomerSelection) Quote() ExistingCustomerQuote {
	return QuoteExistingCustomer(ExistingCustomerInput{
		CurrentPlan: s.current,
		NewPlan:     s.next,
		StartDate:   s.start,
		EndDate:     s.end,
		Addons:      s.snapshot.Addons(),
		Selected:    s.addons,
		Rule:        s.rule,
	})
}
