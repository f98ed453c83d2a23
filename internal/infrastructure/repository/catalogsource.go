package repository

import (
	"context"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

// DatabaseCatalogSource reads the active catalog through the repositories.
type DatabaseCatalogSource struct {
	plans  catalog.PlanRepository
	addons catalog.AddonRepository
}

func NewDatabaseCatalogSource(plans catalog.PlanRepository, addons catalog.AddonRepository) *DatabaseCatalogSource {
	return &DatabaseCatalogSource{plans: plans, addons: addons}
}

func (s *DatabaseCatalogSource) ListActivePlans(ctx context.Context) ([]*catalog.Plan, error) {
	return s.plans.ListActive(ctx)
}

func (s *DatabaseCatalogSource) ListActiveAddons(ctx context.Context) ([]*catalog.Addon, error) {
	return s.addons.ListActive(ctx)
}
