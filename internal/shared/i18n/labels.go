package i18n

import "fmt"

var (
	ProductName = T("Jaras Platform", "منصة جرس")
	Currency    = T("SAR", "ريال")

	Recommended          = T("Recommended", "موصى به")
	PerYear              = T("per year", "سنوياً")
	Units                = T("units", "وحدة")
	ExtraUnits           = T("extra units", "وحدة إضافية")
	UnlimitedReservation = T("Unlimited reservations", "حجوزات غير محدودة")
	Reservations         = T("reservations", "حجز")
	PerExtraUnit         = T("SAR per extra unit", "ريال لكل وحدة إضافية")

	PlanDiscount       = T("Plan Discount", "خصم الخطة")
	AdditionalDiscount = T("Additional Discount", "خصم إضافي")
	PlanSubtotal       = T("Plan Subtotal", "المجموع الفرعي للخطة")
	Subtotal           = T("Subtotal", "المجموع الفرعي")
	Total              = T("Total", "المجموع")
	BilledAnnually     = T("Billed annually", "يتم الدفع سنوياً")
	AmountDue          = T("Amount Due", "المبلغ المستحق")

	Included    = T("Included", "مشمول")
	OneTime     = T("One-time payment", "دفعة واحدة")
	PerYearUnit = T("SAR/year", "ريال/سنة")

	PlanUpgrade   = T("Plan Upgrade", "ترقية الخطة")
	PlanDowngrade = T("Plan Downgrade", "تخفيض الخطة")
	NoPlanChange  = T("No Plan Change", "لا تغيير في الخطة")
	CreditNote    = T("Credit will be applied to your account", "سيتم إضافة الرصيد إلى حسابك")
	PaymentDue    = T("Payment due immediately", "الدفع مطلوب فوراً")
)

// Save renders the "Save N%" badge.
func Save(percent string) Text {
	return T(fmt.Sprintf("Save %s%%", percent), fmt.Sprintf("وفر %s٪", percent))
}

// Vat renders the VAT line label for a rate given in percent.
func Vat(percent string) Text {
	return T(fmt.Sprintf("VAT %s%% (inclusive)", percent), fmt.Sprintf("ضريبة القيمة المضافة %s٪ (مشمولة)", percent))
}

// ProratedFor renders "Prorated for N days".
func ProratedFor(days int) Text {
	return T(fmt.Sprintf("Prorated for %d days", days), fmt.Sprintf("محسوب لـ %d يوم", days))
}

// ExtraUnitsLine renders "N extra units".
func ExtraUnitsLine(n int) Text {
	return T(fmt.Sprintf("%d %s", n, ExtraUnits.EN), fmt.Sprintf("%d %s", n, ExtraUnits.AR))
}
