package catalog

import "context"

// Source is the read side of the catalog store. Both lists hold active
// entries only, ordered by sortOrder ascending.
type Source interface {
	ListActivePlans(ctx context.Context) ([]*Plan, error)
	ListActiveAddons(ctx context.Context) ([]*Addon, error)
}

type PlanRepository interface {
	ListActive(ctx context.Context) ([]*Plan, error)
	// GetByCode returns nil, nil when no plan has the code.
	GetByCode(ctx context.Context, code string) (*Plan, error)
	// Save inserts the plan or updates the row with the same code.
	Save(ctx context.Context, plan *Plan) error
}

type AddonRepository interface {
	ListActive(ctx context.Context) ([]*Addon, error)
	GetByCode(ctx context.Context, code string) (*Addon, error)
	Save(ctx context.Context, addon *Addon) error
}
