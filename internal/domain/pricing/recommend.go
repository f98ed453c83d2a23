package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

// RecommendPlan returns the smallest-quota plan whose quota covers units,
// or the largest-quota plan when none does. Ties on quota keep display
// order. Nil when plans is empty.
func RecommendPlan(plans []*catalog.Plan, units int) *catalog.Plan {
	if len(plans) == 0 {
		return nil
	}

	byQuota := make([]*catalog.Plan, len(plans))
	copy(byQuota, plans)
	sort.SliceStable(byQuota, func(i, j int) bool {
		return byQuota[i].UnitsQuota() < byQuota[j].UnitsQuota()
	})

	for _, p := range byQuota {
		if p.UnitsQuota() >= units {
			return p
		}
	}
	return byQuota[len(byQuota)-1]
}

func FitsUnits(plan *catalog.Plan, units int) bool {
	return plan != nil && plan.UnitsQuota() >= units
}

// ExtraUnits is max(0, units - quota).
func ExtraUnits(plan *catalog.Plan, units int) int {
	if plan == nil {
		return 0
	}
	extra := units - plan.UnitsQuota()
	if extra < 0 {
		return 0
	}
	return extra
}

func ExtraUnitsCost(plan *catalog.Plan, units int) decimal.Decimal {
	extra := ExtraUnits(plan, units)
	if extra == 0 {
		return decimal.Zero
	}
	return plan.AdditionalUnitPrice().Mul(decimal.NewFromInt(int64(extra)))
}
