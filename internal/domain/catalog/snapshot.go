package catalog

import (
	"sort"
	"time"
)

// Snapshot is an immutable view of the active catalog. Plans and add-ons
// are ordered by sortOrder ascending; inactive entries are dropped.
type Snapshot struct {
	plans    []*Plan
	addons   []*Addon
	loadedAt time.Time
}

func NewSnapshot(plans []*Plan, addons []*Addon) *Snapshot {
	activePlans := make([]*Plan, 0, len(plans))
	for _, p := range plans {
		if p != nil && p.IsActive() {
			activePlans = append(activePlans, p)
		}
	}
	sort.SliceStable(activePlans, func(i, j int) bool {
		return activePlans[i].SortOrder() < activePlans[j].SortOrder()
	})

	activeAddons := make([]*Addon, 0, len(addons))
	for _, a := range addons {
		if a != nil && a.IsActive() {
			activeAddons = append(activeAddons, a)
		}
	}
	sort.SliceStable(activeAddons, func(i, j int) bool {
		return activeAddons[i].SortOrder() < activeAddons[j].SortOrder()
	})

	return &Snapshot{
		plans:    activePlans,
		addons:   activeAddons,
		loadedAt: time.Now().UTC(),
	}
}

// Plans returns the active plans in display order. The slice is a copy.
func (s *Snapshot) Plans() []*Plan {
	out := make([]*Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

// Addons returns the active add-ons in display order. The slice is a copy.
func (s *Snapshot) Addons() []*Addon {
	out := make([]*Addon, len(s.addons))
	copy(out, s.addons)
	return out
}

func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

func (s *Snapshot) IsEmpty() bool {
	return len(s.plans) == 0 && len(s.addons) == 0
}

// FirstPlan is the first plan in display order, nil when there are none.
func (s *Snapshot) FirstPlan() *Plan {
	if len(s.plans) == 0 {
		return nil
	}
	return s.plans[0]
}

func (s *Snapshot) PlanByCode(code string) (*Plan, error) {
	for _, p := range s.plans {
		if p.Code() == code {
			return p, nil
		}
	}
	return nil, planNotFound(code)
}

func (s *Snapshot) AddonByCode(code string) (*Addon, error) {
	for _, a := range s.addons {
		if a.Code() == code {
			return a, nil
		}
	}
	return nil, addonNotFound(code)
}

// PlansByQuota returns the plans by ascending units quota, keeping display
// order between equal quotas.
func (s *Snapshot) PlansByQuota() []*Plan {
	out := s.Plans()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UnitsQuota() < out[j].UnitsQuota()
	})
	return out
}
