package handlers

import (
	"context"

	catalogUsecases "github.com/jaras-platform/jaras/internal/application/catalog/usecases"
	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
)

// Use case interfaces for CatalogHandler

type getCatalogUseCase interface {
	Execute(ctx context.Context, query catalogUsecases.GetCatalogQuery) (*dto.CatalogDTO, error)
}

type getCatalogStatusUseCase interface {
	Execute(ctx context.Context) *dto.CatalogStatusDTO
}

type reloadCatalogUseCase interface {
	Execute(ctx context.Context) (*dto.CatalogStatusDTO, error)
}
