package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

// DaysInYear is the fixed proration denominator; leap years are ignored.
const DaysInYear = 365

var (
	hundred    = decimal.NewFromInt(100)
	daysInYear = decimal.NewFromInt(DaysInYear)
)

const day = 24 * time.Hour

// RemainingDays is ceil(end - start) in days, floored at 0. Both times are
// compared by their wall clock in their own zone, so a daylight saving
// shift inside the span does not add or lose a day.
func RemainingDays(start, end time.Time) int {
	d := wallClock(end).Sub(wallClock(start))
	if d <= 0 {
		return 0
	}
	return int((d + day - 1) / day)
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Prorate scales a yearly price to the given number of days.
func Prorate(price decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(days))).Div(daysInYear)
}

// DiscountedPrice is the plan's yearly price after its own discount.
func DiscountedPrice(plan *catalog.Plan) decimal.Decimal {
	if plan == nil {
		return decimal.Zero
	}
	return plan.DiscountedPrice()
}

// PlanDifference is the prorated delta between the discounted prices of the
// next and current plan. Negative on a downgrade.
func PlanDifference(current, next *catalog.Plan, days int) decimal.Decimal {
	if current == nil || next == nil {
		return decimal.Zero
	}
	return Prorate(DiscountedPrice(next).Sub(DiscountedPrice(current)), days)
}

// ClampPercent bounds a percentage to [0, 100].
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
