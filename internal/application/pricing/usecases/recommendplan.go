package usecases

import (
	"context"

	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

type RecommendPlanQuery struct {
	Lang       i18n.Lang
	IncludeVat *bool
	UnitsCount int
}

type RecommendPlanUseCase struct {
	provider SnapshotProvider
	settings Settings
	logger   logger.Interface
}

func NewRecommendPlanUseCase(provider SnapshotProvider, settings Settings, logger logger.Interface) *RecommendPlanUseCase {
	return &RecommendPlanUseCase{
		provider: provider,
		settings: settings,
		logger:   logger,
	}
}

func (uc *RecommendPlanUseCase) Execute(ctx context.Context, query RecommendPlanQuery) (*dto.RecommendationDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, CatalogError(err)
	}

	units := query.UnitsCount
	if units < 1 {
		units = 1
	}
	return uc.settings.Presenter(query.Lang, query.IncludeVat).Recommendation(snap, units), nil
}
