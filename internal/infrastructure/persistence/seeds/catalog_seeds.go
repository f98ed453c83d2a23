package seeds

import (
	"context"
	"fmt"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/infrastructure/catalogfile"
	"github.com/jaras-platform/jaras/internal/shared/db"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

// Result counts what a seed run wrote.
type Result struct {
	Plans  int
	Addons int
}

// CatalogSeeder upserts a catalog document into the database. Rows are
// matched by code, so seeding twice is harmless. The whole document is
// written in one transaction.
type CatalogSeeder struct {
	tx     *db.TransactionManager
	plans  catalog.PlanRepository
	addons catalog.AddonRepository
	logger logger.Interface
}

func NewCatalogSeeder(tx *db.TransactionManager, plans catalog.PlanRepository, addons catalog.AddonRepository, log logger.Interface) *CatalogSeeder {
	return &CatalogSeeder{
		tx:     tx,
		plans:  plans,
		addons: addons,
		logger: log.With("component", "seeds.catalog"),
	}
}

func (s *CatalogSeeder) Seed(ctx context.Context, doc *catalogfile.Document) (Result, error) {
	plans, addons, err := doc.Entities()
	if err != nil {
		return Result{}, err
	}

	var res Result
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		res = Result{}
		for _, p := range plans {
			if err := s.plans.Save(ctx, p); err != nil {
				return fmt.Errorf("failed to seed plan %s: %w", p.Code(), err)
			}
			res.Plans++
		}
		for _, a := range addons {
			if err := s.addons.Save(ctx, a); err != nil {
				return fmt.Errorf("failed to seed add-on %s: %w", a.Code(), err)
			}
			res.Addons++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Infow("catalog seeded", "plans", res.Plans, "addons", res.Addons)
	return res, nil
}

// SeedFile seeds from a YAML catalog file.
func (s *CatalogSeeder) SeedFile(ctx context.Context, path string) (Result, error) {
	doc, err := catalogfile.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return s.Seed(ctx, doc)
}
