package usecases

import (
	"context"

	appcatalog "github.com/jaras-platform/jaras/internal/application/catalog"
	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	pricingUsecases "github.com/jaras-platform/jaras/internal/application/pricing/usecases"
	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

type GetCatalogStatusUseCase struct {
	provider CatalogProvider
}

func NewGetCatalogStatusUseCase(provider CatalogProvider) *GetCatalogStatusUseCase {
	return &GetCatalogStatusUseCase{provider: provider}
}

// Execute never triggers a load; it reports what the provider holds.
func (uc *GetCatalogStatusUseCase) Execute(ctx context.Context) *dto.CatalogStatusDTO {
	status, err := uc.provider.Status()
	out := &dto.CatalogStatusDTO{Status: string(status)}
	switch status {
	case appcatalog.StatusFailed:
		if err != nil {
			out.Error = err.Error()
		}
	case appcatalog.StatusReady:
		// Ready means Snapshot returns immediately.
		if snap, err := uc.provider.Snapshot(ctx); err == nil {
			fillCounts(out, snap)
		}
	}
	return out
}

func fillCounts(out *dto.CatalogStatusDTO, snap *catalog.Snapshot) {
	out.Plans = len(snap.Plans())
	out.Addons = len(snap.Addons())
	loadedAt := snap.LoadedAt()
	out.LoadedAt = &loadedAt
}

type ReloadCatalogUseCase struct {
	provider CatalogProvider
	logger   logger.Interface
}

func NewReloadCatalogUseCase(provider CatalogProvider, logger logger.Interface) *ReloadCatalogUseCase {
	return &ReloadCatalogUseCase{provider: provider, logger: logger}
}

func (uc *ReloadCatalogUseCase) Execute(ctx context.Context) (*dto.CatalogStatusDTO, error) {
	snap, err := uc.provider.Reload(ctx)
	if err != nil {
		uc.logger.Errorw("catalog reload failed", "error", err)
		return nil, pricingUsecases.CatalogError(err)
	}

	out := &dto.CatalogStatusDTO{Status: string(appcatalog.StatusReady)}
	fillCounts(out, snap)
	uc.logger.Infow("catalog reloaded", "plans", out.Plans, "addons", out.Addons)
	return out, nil
}
