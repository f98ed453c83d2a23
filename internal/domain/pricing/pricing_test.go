package pricing

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/shared/biztime"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, dec(want).StringFixed(2), got.Round(2).StringFixed(2), msgAndArgs...)
}

func newPlan(t *testing.T, code string, yearly, discount string, quota int, unitPrice string, sortOrder int) *catalog.Plan {
	t.Helper()
	p, err := catalog.NewPlan(catalog.PlanAttributes{
		Code:                code,
		Name:                i18n.T("Plan "+code, "خطة "+code),
		YearlyPrice:         dec(yearly),
		DiscountPercentage:  dec(discount),
		UnitsQuota:          quota,
		AdditionalUnitPrice: dec(unitPrice),
		ReservationsQuota:   catalog.UnlimitedReservations,
		SortOrder:           sortOrder,
		IsActive:            true,
	})
	require.NoError(t, err)
	return p
}

func newRecurringAddon(t *testing.T, code, yearly string, sortOrder int) *catalog.Addon {
	t.Helper()
	a, err := catalog.NewAddon(catalog.AddonAttributes{
		Code:        code,
		Name:        i18n.T(code, code),
		YearlyPrice: dec(yearly),
		SortOrder:   sortOrder,
		IsActive:    true,
	})
	require.NoError(t, err)
	return a
}

func newOnetimeAddon(t *testing.T, code, price string, sortOrder int) *catalog.Addon {
	t.Helper()
	a, err := catalog.NewAddon(catalog.AddonAttributes{
		Code:         code,
		Name:         i18n.T(code, code),
		IsOnetime:    true,
		OnetimePrice: dec(price),
		SortOrder:    sortOrder,
		IsActive:     true,
	})
	require.NoError(t, err)
	return a
}

// testCatalog: basic (quota 10), growth (quota 25), professional (quota 50)
// and four add-ons, one of them OTA registration.
func testCatalog(t *testing.T) *catalog.Snapshot {
	t.Helper()
	plans := []*catalog.Plan{
		newPlan(t, "P-0010", "1000", "10", 10, "5", 1),
		newPlan(t, "P-0020", "2000", "0", 25, "4", 2),
		newPlan(t, DefaultProfessionalPlanCode, "3000", "20", 50, "3", 3),
	}
	addons := []*catalog.Addon{
		newRecurringAddon(t, "channel_manager", "365", 1),
		newRecurringAddon(t, "website_builder", "730", 2),
		newOnetimeAddon(t, DefaultOTAAddonCode, "500", 3),
		newOnetimeAddon(t, "onboarding", "200", 4),
	}
	return catalog.NewSnapshot(plans, addons)
}

func mustPlan(t *testing.T, snap *catalog.Snapshot, code string) *catalog.Plan {
	t.Helper()
	p, err := snap.PlanByCode(code)
	require.NoError(t, err)
	return p
}

func bizDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, biztime.Location())
}

// =====================================================================
// VAT policy
// =====================================================================

func TestVatPolicy_On(t *testing.T) {
	p := NewVatPolicy(DefaultVatRate, true)

	assertAmount(t, "1150", p.Apply(dec("1150")))
	assertAmount(t, "150", p.VatAmount(dec("1150")))
}

func TestVatPolicy_Off(t *testing.T) {
	p := DefaultVatPolicy()
	assert.False(t, p.IncludeVat())

	assertAmount(t, "1000", p.Apply(dec("1150")))
	assertAmount(t, "0", p.VatAmount(dec("1150")))
}

func TestVatPolicy_Toggle(t *testing.T) {
	p := DefaultVatPolicy()
	toggled := p.Toggle()

	assert.True(t, toggled.IncludeVat())
	assert.True(t, p.Rate().Equal(toggled.Rate()))
	assert.False(t, toggled.Toggle().IncludeVat())
	assert.Equal(t, "15", p.RatePercent().String())
}

func TestVatPolicy_BreakdownAddsUp(t *testing.T) {
	for _, include := range []bool{true, false} {
		p := NewVatPolicy(DefaultVatRate, include)
		for _, amount := range []string{"0", "1150", "498.63", "-230"} {
			b := p.Breakdown(dec(amount))
			assert.True(t, b.Net.Add(b.Vat).Sub(b.Total).Abs().LessThan(dec("0.0001")),
				"include=%v amount=%s", include, amount)
		}
	}
}

func TestVatPolicy_NegativeRateClampedToZero(t *testing.T) {
	p := NewVatPolicy(dec("-0.1"), true)
	assert.True(t, p.Rate().IsZero())
	assertAmount(t, "0", p.VatAmount(dec("100")))
}

// =====================================================================
// Proration
// =====================================================================

func TestRemainingDays(t *testing.T) {
	start := bizDate(2025, time.January, 1)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same day", start, 0},
		{"end before start", start.AddDate(0, 0, -10), 0},
		{"one day", start.AddDate(0, 0, 1), 1},
		{"partial day rounds up", start.Add(36 * time.Hour), 2},
		{"six months", bizDate(2025, time.July, 1), 181},
		{"182 days", start.AddDate(0, 0, 182), 182},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingDays(start, tt.end))
		})
	}
}

func TestRemainingDays_AcrossDaylightSaving(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{
			name:  "clocks go back",
			start: time.Date(2025, time.October, 1, 0, 0, 0, 0, london),
			end:   time.Date(2025, time.November, 1, 0, 0, 0, 0, london),
			want:  31,
		},
		{
			name:  "clocks go forward",
			start: time.Date(2025, time.March, 1, 0, 0, 0, 0, london),
			end:   time.Date(2025, time.April, 1, 0, 0, 0, 0, london),
			want:  31,
		},
		{
			name:  "partial day still rounds up",
			start: time.Date(2025, time.October, 25, 0, 0, 0, 0, london),
			end:   time.Date(2025, time.October, 26, 12, 0, 0, 0, london),
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingDays(tt.start, tt.end))
		})
	}
}

func TestProrate_ZeroDays(t *testing.T) {
	assert.True(t, Prorate(dec("1000"), 0).IsZero())
	assert.True(t, Prorate(dec("1000"), -5).IsZero())
}

func TestProrate_MonotonicInDays(t *testing.T) {
	price := dec("1234.5")
	prev := Prorate(price, 0)
	for days := 1; days <= 400; days++ {
		cur := Prorate(price, days)
		assert.False(t, cur.LessThan(prev), "days=%d", days)
		prev = cur
	}
	assertAmount(t, "1234.5", Prorate(price, DaysInYear))
}

func TestPlanDifference(t *testing.T) {
	current := newPlan(t, "A", "1000", "0", 10, "0", 1)
	next := newPlan(t, "B", "2000", "0", 20, "0", 2)

	assertAmount(t, "498.63", PlanDifference(current, next, 182))
	assertAmount(t, "-498.63", PlanDifference(next, current, 182))
	assert.True(t, PlanDifference(current, next, 0).IsZero())
	assert.True(t, PlanDifference(nil, next, 182).IsZero())
}

func TestDiscountedPrice_NeverAboveYearly(t *testing.T) {
	for _, d := range []string{"0", "0.5", "10", "33.33", "99.99", "100"} {
		p := newPlan(t, "X", "1999.99", d, 1, "0", 1)
		assert.False(t, DiscountedPrice(p).GreaterThan(p.YearlyPrice()), "discount=%s", d)
		assert.False(t, DiscountedPrice(p).IsNegative(), "discount=%s", d)
	}
	assert.True(t, DiscountedPrice(nil).IsZero())
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, "0", ClampPercent(dec("-3")).String())
	assert.Equal(t, "100", ClampPercent(dec("120")).String())
	assert.Equal(t, "12.5", ClampPercent(dec("12.5")).String())
}

// =====================================================================
// Recommendation
// =====================================================================

func TestRecommendPlan(t *testing.T) {
	snap := testCatalog(t)

	tests := []struct {
		units int
		want  string
	}{
		{1, "P-0010"},
		{10, "P-0010"},
		{11, "P-0020"},
		{25, "P-0020"},
		{26, DefaultProfessionalPlanCode},
		{5000, DefaultProfessionalPlanCode},
	}

	for _, tt := range tests {
		got := RecommendPlan(snap.Plans(), tt.units)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, got.Code(), "units=%d", tt.units)
	}
}

func TestRecommendPlan_IgnoresDisplayOrder(t *testing.T) {
	big := newPlan(t, "BIG", "5000", "0", 100, "0", 1)
	small := newPlan(t, "SMALL", "500", "0", 5, "0", 2)

	assert.Equal(t, "SMALL", RecommendPlan([]*catalog.Plan{big, small}, 3).Code())
	assert.Equal(t, "BIG", RecommendPlan([]*catalog.Plan{big, small}, 6).Code())
}

func TestRecommendPlan_EqualQuotaKeepsOrder(t *testing.T) {
	first := newPlan(t, "FIRST", "500", "0", 5, "0", 1)
	second := newPlan(t, "SECOND", "400", "0", 5, "0", 2)

	assert.Equal(t, "FIRST", RecommendPlan([]*catalog.Plan{first, second}, 5).Code())
}

func TestRecommendPlan_Empty(t *testing.T) {
	assert.Nil(t, RecommendPlan(nil, 3))
}

func TestExtraUnits(t *testing.T) {
	p := newPlan(t, "A", "1000", "0", 10, "5", 1)

	assert.Equal(t, 0, ExtraUnits(p, 4))
	assert.Equal(t, 2, ExtraUnits(p, 12))
	assertAmount(t, "10", ExtraUnitsCost(p, 12))
	assert.True(t, ExtraUnitsCost(p, 10).IsZero())
	assert.Equal(t, 0, ExtraUnits(nil, 12))
	assert.True(t, FitsUnits(p, 10))
	assert.False(t, FitsUnits(p, 11))
}

// =====================================================================
// Bundling
// =====================================================================

func TestBundlingRule_SelectionFor(t *testing.T) {
	snap := testCatalog(t)
	rule := DefaultBundlingRule()

	pro := rule.SelectionFor(mustPlan(t, snap, DefaultProfessionalPlanCode), snap.Addons())
	assert.Equal(t, []string{"channel_manager", "website_builder", "onboarding"}, pro.Codes(snap.Addons()))
	assert.False(t, pro.Has(DefaultOTAAddonCode))

	assert.Empty(t, rule.SelectionFor(mustPlan(t, snap, "P-0010"), snap.Addons()))
	assert.Empty(t, rule.SelectionFor(nil, snap.Addons()))
}

func TestChargeAddons_ProfessionalChargesOnlyOTA(t *testing.T) {
	snap := testCatalog(t)
	rule := DefaultBundlingRule()
	all := NewAddonSet("channel_manager", "website_builder", DefaultOTAAddonCode, "onboarding")

	for _, term := range []AddonTerm{FullTerm(), ProratedTerm(90)} {
		charges := ChargeAddons(mustPlan(t, snap, DefaultProfessionalPlanCode), snap.Addons(), all, rule, term)

		require.Len(t, charges, 4)
		assert.Equal(t, 1, ChargeableCount(charges))
		for _, c := range charges {
			if rule.IsOTA(c.Addon) {
				assert.False(t, c.Included)
				assert.True(t, c.OneTime)
				assert.False(t, c.Prorated)
				assertAmount(t, "500", c.Amount)
			} else {
				assert.True(t, c.Included, c.Addon.Code())
				assert.True(t, c.Amount.IsZero(), c.Addon.Code())
			}
		}
		assertAmount(t, "500", SumCharges(charges))
	}
}

func TestChargeAddons_OtherPlanChargesIndividually(t *testing.T) {
	snap := testCatalog(t)
	basic := mustPlan(t, snap, "P-0010")
	selected := NewAddonSet("channel_manager", "onboarding")

	full := ChargeAddons(basic, snap.Addons(), selected, DefaultBundlingRule(), FullTerm())
	require.Len(t, full, 2)
	assertAmount(t, "365", full[0].Amount)
	assert.False(t, full[0].Prorated)
	assertAmount(t, "200", full[1].Amount)
	assert.True(t, full[1].OneTime)

	prorated := ChargeAddons(basic, snap.Addons(), selected, DefaultBundlingRule(), ProratedTerm(73))
	assertAmount(t, "73", prorated[0].Amount)
	assert.True(t, prorated[0].Prorated)
	assertAmount(t, "200", prorated[1].Amount, "one-time add-ons are never prorated")
}

func TestChargeAddons_CatalogOrderAndUnknownCodes(t *testing.T) {
	snap := testCatalog(t)
	selected := NewAddonSet("onboarding", "missing", "channel_manager")

	charges := ChargeAddons(nil, snap.Addons(), selected, DefaultBundlingRule(), FullTerm())
	require.Len(t, charges, 2)
	assert.Equal(t, "channel_manager", charges[0].Addon.Code())
	assert.Equal(t, "onboarding", charges[1].Addon.Code())
}

func TestAddonSet_Toggle(t *testing.T) {
	s := NewAddonSet()
	assert.True(t, s.Toggle("a"))
	assert.True(t, s.Has("a"))
	assert.False(t, s.Toggle("a"))
	assert.False(t, s.Has("a"))

	s.Add("b")
	clone := s.Clone()
	clone.Remove("b")
	assert.True(t, s.Has("b"))
}

// =====================================================================
// New-customer quote
// =====================================================================

func TestQuoteNewCustomer_ExtraUnitsScenario(t *testing.T) {
	plan := newPlan(t, "A", "1000", "10", 10, "5", 1)

	q := QuoteNewCustomer(NewCustomerInput{
		Plan:       plan,
		UnitsCount: 12,
		Rule:       DefaultBundlingRule(),
	})

	assert.Equal(t, 2, q.ExtraUnits)
	assertAmount(t, "10", q.ExtraUnitsCost)
	assertAmount(t, "100", q.PlanDiscountAmount)
	assertAmount(t, "900", q.PriceAfterPlanDiscount)
	assertAmount(t, "910", q.PlanTotal)
	assertAmount(t, "910", q.GrandTotal)
}

func TestQuoteNewCustomer_ManualDiscountSkipsExtrasAndAddons(t *testing.T) {
	snap := testCatalog(t)
	basic := mustPlan(t, snap, "P-0010")

	q := QuoteNewCustomer(NewCustomerInput{
		Plan:                     basic,
		Addons:                   snap.Addons(),
		Selected:                 NewAddonSet("channel_manager"),
		UnitsCount:               12,
		ManualDiscountPercentage: dec("50"),
		Rule:                     DefaultBundlingRule(),
	})

	assertAmount(t, "450", q.ManualDiscountAmount)
	assertAmount(t, "460", q.PlanTotal)
	assertAmount(t, "365", q.AddonsTotal)
	assertAmount(t, "825", q.GrandTotal)
}

func TestQuoteNewCustomer_ClampsManualDiscount(t *testing.T) {
	plan := newPlan(t, "A", "1000", "0", 10, "5", 1)

	q := QuoteNewCustomer(NewCustomerInput{Plan: plan, UnitsCount: 1, ManualDiscountPercentage: dec("150")})
	assertAmount(t, "0", q.PlanTotal)
	assert.Equal(t, "100", q.ManualDiscountPercentage.String())
}

func TestQuoteNewCustomer_NoPlan(t *testing.T) {
	q := QuoteNewCustomer(NewCustomerInput{UnitsCount: 5})

	assert.Nil(t, q.Plan)
	assert.True(t, q.PlanTotal.IsZero())
	assert.True(t, q.GrandTotal.IsZero())
	assert.Empty(t, q.Addons)
}

func TestQuoteNewCustomer_GrandTotalNeverNegative(t *testing.T) {
	snap := testCatalog(t)
	all := NewAddonSet("channel_manager", "website_builder", DefaultOTAAddonCode, "onboarding")

	for _, plan := range snap.Plans() {
		for _, units := range []int{0, 1, 10, 51, 300} {
			for _, manual := range []string{"-20", "0", "35", "100", "250"} {
				q := QuoteNewCustomer(NewCustomerInput{
					Plan:                     plan,
					Addons:                   snap.Addons(),
					Selected:                 all,
					UnitsCount:               units,
					ManualDiscountPercentage: dec(manual),
					Rule:                     DefaultBundlingRule(),
				})
				assert.False(t, q.GrandTotal.IsNegative(), "plan=%s units=%d manual=%s", plan.Code(), units, manual)
			}
		}
	}
}

// =====================================================================
// Existing-customer quote
// =====================================================================

func TestQuoteExistingCustomer_Upgrade(t *testing.T) {
	snap := testCatalog(t)
	start := bizDate(2025, time.January, 1)

	q := QuoteExistingCustomer(ExistingCustomerInput{
		CurrentPlan: mustPlan(t, snap, "P-0010"),
		NewPlan:     mustPlan(t, snap, "P-0020"),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 73),
		Addons:      snap.Addons(),
		Selected:    NewAddonSet("channel_manager", "onboarding"),
		Rule:        DefaultBundlingRule(),
	})

	assert.Equal(t, 73, q.RemainingDays)
	assertAmount(t, "900", q.CurrentPlanPrice)
	assertAmount(t, "2000", q.NewPlanPrice)
	// (2000 - 900) * 73 / 365
	assertAmount(t, "220", q.PlanDifference)
	assertAmount(t, "273", q.AddonsTotal)
	assertAmount(t, "493", q.GrandTotal)
	assert.Equal(t, ChangeUpgrade, q.ChangeType)
	assert.False(t, q.IsCredit())
}

func TestQuoteExistingCustomer_DowngradeIsCredit(t *testing.T) {
	snap := testCatalog(t)
	start := bizDate(2025, time.March, 1)

	q := QuoteExistingCustomer(ExistingCustomerInput{
		CurrentPlan: mustPlan(t, snap, "P-0020"),
		NewPlan:     mustPlan(t, snap, "P-0010"),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 182),
		Rule:        DefaultBundlingRule(),
	})

	assert.Equal(t, ChangeDowngrade, q.ChangeType)
	assert.True(t, q.PlanDifference.IsNegative())
	assert.True(t, q.IsCredit())
}

func TestQuoteExistingCustomer_ProfessionalOTANotProrated(t *testing.T) {
	snap := testCatalog(t)
	start := bizDate(2025, time.January, 1)

	q := QuoteExistingCustomer(ExistingCustomerInput{
		CurrentPlan: mustPlan(t, snap, DefaultProfessionalPlanCode),
		NewPlan:     mustPlan(t, snap, DefaultProfessionalPlanCode),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 10),
		Addons:      snap.Addons(),
		Selected:    NewAddonSet("channel_manager", DefaultOTAAddonCode),
		Rule:        DefaultBundlingRule(),
	})

	assert.Equal(t, ChangeNone, q.ChangeType)
	assert.True(t, q.PlanDifference.IsZero())
	assertAmount(t, "500", q.AddonsTotal)
	assertAmount(t, "500", q.GrandTotal)
}

func TestQuoteExistingCustomer_EndBeforeStart(t *testing.T) {
	snap := testCatalog(t)
	start := bizDate(2025, time.June, 1)

	q := QuoteExistingCustomer(ExistingCustomerInput{
		CurrentPlan: mustPlan(t, snap, "P-0010"),
		NewPlan:     mustPlan(t, snap, "P-0020"),
		StartDate:   start,
		EndDate:     start.AddDate(0, -1, 0),
		Addons:      snap.Addons(),
		Selected:    NewAddonSet("channel_manager"),
		Rule:        DefaultBundlingRule(),
	})

	assert.Equal(t, 0, q.RemainingDays)
	assert.True(t, q.GrandTotal.IsZero())
}

func TestClassifyChange(t *testing.T) {
	cheap := newPlan(t, "A", "1000", "50", 1, "0", 1)
	pricey := newPlan(t, "B", "1500", "0", 1, "0", 2)

	assert.Equal(t, ChangeUpgrade, ClassifyChange(cheap, pricey))
	assert.Equal(t, ChangeDowngrade, ClassifyChange(pricey, cheap))
	assert.Equal(t, ChangeNone, ClassifyChange(cheap, cheap))
	assert.Equal(t, ChangeNone, ClassifyChange(nil, cheap))
}
