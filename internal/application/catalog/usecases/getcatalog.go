package usecases

import (
	"context"

	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	pricingUsecases "github.com/jaras-platform/jaras/internal/application/pricing/usecases"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

type GetCatalogQuery struct {
	Lang       i18n.Lang
	IncludeVat *bool
	// UnitsCount drives the per-plan fit and extra units; defaults to 1.
	UnitsCount int
}

type GetCatalogUseCase struct {
	provider CatalogProvider
	settings pricingUsecases.Settings
	logger   logger.Interface
}

func NewGetCatalogUseCase(
	provider CatalogProvider,
	settings pricingUsecases.Settings,
	logger logger.Interface,
) *GetCatalogUseCase {
	return &GetCatalogUseCase{
		provider: provider,
		settings: settings,
		logger:   logger,
	}
}

func (uc *GetCatalogUseCase) Execute(ctx context.Context, query GetCatalogQuery) (*dto.CatalogDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		uc.logger.Warnw("catalog not available", "error", err)
		return nil, pricingUsecases.CatalogError(err)
	}

	units := query.UnitsCount
	if units < 1 {
		units = 1
	}
	return uc.settings.Presenter(query.Lang, query.IncludeVat).Catalog(snap, units), nil
}
