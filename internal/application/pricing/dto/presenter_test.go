package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/domain/pricing"
	"github.com/jaras-platform/jaras/internal/shared/biztime"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

func testPlans(t *testing.T) []*catalog.Plan {
	t.Helper()
	starter, err := catalog.NewPlan(catalog.PlanAttributes{
		Code:                "P-0010",
		Name:                i18n.T("Starter", "المبتدئة"),
		YearlyPrice:         decimal.NewFromInt(2300),
		UnitsQuota:          5,
		AdditionalUnitPrice: decimal.NewFromInt(230),
		ReservationsQuota:   1200,
		SortOrder:           1,
		IsActive:            true,
	})
	require.NoError(t, err)

	pro, err := catalog.NewPlan(catalog.PlanAttributes{
		Code:                "P-0026",
		Name:                i18n.T("Professional", "الاحترافية"),
		YearlyPrice:         decimal.NewFromInt(11500),
		DiscountPercentage:  decimal.NewFromInt(10),
		UnitsQuota:          50,
		AdditionalUnitPrice: decimal.NewFromInt(115),
		ReservationsQuota:   catalog.UnlimitedReservations,
		SortOrder:           2,
		IsActive:            true,
	})
	require.NoError(t, err)
	return []*catalog.Plan{starter, pro}
}

func testAddons(t *testing.T) []*catalog.Addon {
	t.Helper()
	channel, err := catalog.NewAddon(catalog.AddonAttributes{
		Code:        "channel_manager",
		Name:        i18n.T("Channel Manager", "مدير القنوات"),
		YearlyPrice: decimal.NewFromInt(1150),
		SortOrder:   1,
		IsActive:    true,
	})
	require.NoError(t, err)

	ota, err := catalog.NewAddon(catalog.AddonAttributes{
		Code:         "ota_registration",
		Name:         i18n.T("OTA Registration", "التسجيل في منصات الحجز"),
		IsOnetime:    true,
		OnetimePrice: decimal.NewFromInt(575),
		SortOrder:    2,
		IsActive:     true,
	})
	require.NoError(t, err)
	return []*catalog.Addon{channel, ota}
}

func presenter(lang i18n.Lang, includeVat bool) Presenter {
	return NewPresenter(lang, pricing.NewVatPolicy(decimal.RequireFromString("0.15"), includeVat), pricing.DefaultBundlingRule())
}

func TestPresenter_Amount(t *testing.T) {
	tests := []struct {
		name       string
		lang       i18n.Lang
		includeVat bool
		want       AmountDTO
	}{
		{"vat shown", i18n.EN, true, AmountDTO{Value: 1150, Display: "1,150 SAR"}},
		{"vat hidden", i18n.EN, false, AmountDTO{Value: 1000, Display: "1,000 SAR"}},
		{"arabic currency", i18n.AR, true, AmountDTO{Value: 1150, Display: "1,150 ريال"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := presenter(tt.lang, tt.includeVat).Amount(decimal.NewFromInt(1150))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresenter_VatSummary(t *testing.T) {
	on := presenter(i18n.EN, true).VatSummary(decimal.NewFromInt(1150))
	assert.True(t, on.IncludeVat)
	assert.Equal(t, "15", on.RatePercent)
	assert.Equal(t, "VAT 15% (inclusive)", on.Label)
	assert.Equal(t, float64(1000), on.Net.Value)
	assert.Equal(t, float64(150), on.Vat.Value)
	assert.Equal(t, float64(1150), on.Total.Value)

	off := presenter(i18n.EN, false).VatSummary(decimal.NewFromInt(1150))
	assert.False(t, off.IncludeVat)
	assert.Equal(t, float64(1000), off.Net.Value)
	assert.Equal(t, float64(0), off.Vat.Value)
	assert.Equal(t, float64(1000), off.Total.Value)
}

func TestPresenter_VatToggle(t *testing.T) {
	got := presenter(i18n.AR, true).VatToggle()
	assert.True(t, got.IncludeVat)
	assert.Equal(t, "ضريبة القيمة المضافة 15٪ (مشمولة)", got.Label)
}

func TestPresenter_PlanCard(t *testing.T) {
	plans := testPlans(t)
	p := presenter(i18n.EN, true)

	card := p.PlanCard(plans[1], 52, plans[1])
	assert.Equal(t, "P-0026", card.Code)
	assert.Equal(t, "Professional", card.Name)
	assert.Equal(t, "Save 10%", card.SaveBadge)
	assert.Equal(t, "Unlimited reservations", card.Reservations)
	assert.True(t, card.UnlimitedReservations)
	assert.False(t, card.FitsUnits)
	assert.Equal(t, 2, card.ExtraUnits)
	assert.Equal(t, float64(230), card.ExtraUnitsCost.Value)
	assert.Equal(t, float64(10350), card.DiscountedPrice.Value)
	assert.True(t, card.Recommended)
	assert.True(t, card.IsProfessional)

	starter := p.PlanCard(plans[0], 3, plans[1])
	assert.Empty(t, starter.SaveBadge)
	assert.Equal(t, "1,200 reservations", starter.Reservations)
	assert.True(t, starter.FitsUnits)
	assert.Equal(t, 0, starter.ExtraUnits)
	assert.False(t, starter.Recommended)
}

func TestPresenter_PlanCardArabic(t *testing.T) {
	card := presenter(i18n.AR, true).PlanCard(testPlans(t)[1], 1, nil)
	assert.Equal(t, "الاحترافية", card.Name)
	assert.Equal(t, "وفر 10٪", card.SaveBadge)
	assert.Equal(t, "حجوزات غير محدودة", card.Reservations)
}

func TestPresenter_Catalog(t *testing.T) {
	snap := catalog.NewSnapshot(testPlans(t), testAddons(t))

	out := presenter(i18n.AR, false).Catalog(snap, 3)
	assert.Equal(t, "ar", out.Lang)
	assert.Equal(t, "rtl", out.Dir)
	assert.Equal(t, "ريال", out.Currency)
	assert.Equal(t, "P-0010", out.RecommendedPlan)
	require.Len(t, out.Plans, 2)
	assert.True(t, out.Plans[0].Recommended)
	assert.Equal(t, float64(2000), out.Plans[0].YearlyPrice.Value)

	require.Len(t, out.Addons, 2)
	assert.Equal(t, "ريال/سنة", out.Addons[0].PriceLabel)
	assert.True(t, out.Addons[1].IsOnetime)
	assert.True(t, out.Addons[1].IsOTA)
	assert.Equal(t, "دفعة واحدة", out.Addons[1].PriceLabel)
	assert.Equal(t, float64(500), out.Addons[1].Price.Value)
}

func TestPresenter_CatalogEmpty(t *testing.T) {
	out := presenter(i18n.EN, true).Catalog(catalog.NewSnapshot(nil, nil), 1)
	assert.Empty(t, out.RecommendedPlan)
	assert.NotNil(t, out.Plans)
	assert.Empty(t, out.Plans)
}

func TestPresenter_Recommendation(t *testing.T) {
	snap := catalog.NewSnapshot(testPlans(t), nil)
	p := presenter(i18n.EN, true)

	got := p.Recommendation(snap, 20)
	require.NotNil(t, got.Plan)
	assert.Equal(t, "P-0026", got.Plan.Code)
	assert.True(t, got.Plan.Recommended)

	empty := p.Recommendation(catalog.NewSnapshot(nil, nil), 20)
	assert.Nil(t, empty.Plan)
}

func TestPresenter_NewCustomerQuote(t *testing.T) {
	plans := testPlans(t)
	q := pricing.QuoteNewCustomer(pricing.NewCustomerInput{
		Plan:                     plans[1],
		Addons:                   testAddons(t),
		Selected:                 pricing.NewAddonSet("channel_manager", "ota_registration"),
		UnitsCount:               52,
		ManualDiscountPercentage: decimal.NewFromInt(10),
		Rule:                     pricing.DefaultBundlingRule(),
	})

	out := presenter(i18n.EN, true).NewCustomerQuote(q)
	require.NotNil(t, out.Plan)
	assert.Equal(t, "P-0026", out.Plan.Code)
	assert.Equal(t, float64(11500), out.PlanPrice.Value)
	assert.Equal(t, float64(1150), out.PlanDiscount.Value)
	assert.Equal(t, float64(1035), out.ManualDiscount.Value)
	// 11500 × 0.9 × 0.9 + 2 × 115
	assert.Equal(t, float64(9545), out.PlanTotal.Value)
	assert.Equal(t, float64(575), out.AddonsTotal.Value)
	assert.Equal(t, float64(10120), out.GrandTotal.Value)
	assert.Equal(t, "Billed annually", out.BillingNote)

	require.Len(t, out.PlanLines, 5)
	assert.Equal(t, "Plan Discount", out.PlanLines[1].Label)
	assert.Equal(t, float64(-1150), out.PlanLines[1].Amount.Value)
	assert.Equal(t, "10%", out.PlanLines[1].Note)
	assert.Equal(t, "Additional Discount", out.PlanLines[2].Label)
	assert.Equal(t, "2 extra units", out.PlanLines[3].Label)
	assert.Equal(t, "Plan Subtotal", out.PlanLines[4].Label)

	require.Len(t, out.Addons, 2)
	assert.True(t, out.Addons[0].Included)
	assert.Equal(t, "Included", out.Addons[0].Note)
	assert.True(t, out.Addons[1].OneTime)
	assert.Equal(t, "One-time payment", out.Addons[1].Note)
}

func TestPresenter_NewCustomerQuoteWithoutPlan(t *testing.T) {
	out := presenter(i18n.EN, true).NewCustomerQuote(pricing.QuoteNewCustomer(pricing.NewCustomerInput{UnitsCount: 1}))
	assert.Nil(t, out.Plan)
	assert.Empty(t, out.PlanLines)
	assert.Empty(t, out.Addons)
	assert.Equal(t, float64(0), out.GrandTotal.Value)
}

func TestPresenter_ExistingCustomerQuote(t *testing.T) {
	plans := testPlans(t)
	start, err := biztime.ParseDate("2025-01-01")
	require.NoError(t, err)
	end := start.AddDate(0, 0, 73)

	q := pricing.QuoteExistingCustomer(pricing.ExistingCustomerInput{
		CurrentPlan: plans[1],
		NewPlan:     plans[0],
		StartDate:   start,
		EndDate:     end,
		Addons:      testAddons(t),
		Selected:    pricing.NewAddonSet("channel_manager"),
		Rule:        pricing.DefaultBundlingRule(),
	})

	out := presenter(i18n.AR, true).ExistingCustomerQuote(q)
	assert.Equal(t, "2025-01-01", out.StartDate)
	assert.Equal(t, "2025-03-15", out.EndDate)
	assert.Equal(t, 73, out.RemainingDays)
	assert.Equal(t, "downgrade", out.ChangeType)
	assert.Equal(t, "تخفيض الخطة", out.ChangeLabel)
	// (2300 − 10350) × 73 / 365 + 1150 × 73 / 365
	assert.Equal(t, float64(-1610), out.PlanDifference.Value)
	assert.Equal(t, float64(230), out.AddonsTotal.Value)
	assert.Equal(t, float64(-1380), out.GrandTotal.Value)
	assert.True(t, out.IsCredit)
	assert.Equal(t, "سيتم إضافة الرصيد إلى حسابك", out.SettlementNote)

	require.Len(t, out.Addons, 1)
	assert.True(t, out.Addons[0].Prorated)
	assert.Equal(t, "محسوب لـ 73 يوم", out.Addons[0].Note)
}

func TestFormatDate_Zero(t *testing.T) {
	assert.Empty(t, formatDate(time.Time{}))
}
