package handlers

import (
	"context"

	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	"github.com/jaras-platform/jaras/internal/application/pricing/usecases"
)

// Use case interfaces for QuoteHandler

type quoteNewCustomerUseCase interface {
	Execute(ctx context.Context, cmd usecases.QuoteNewCustomerCommand) (*dto.NewCustomerQuoteDTO, error)
}

type quoteExistingCustomerUseCase interface {
	Execute(ctx context.Context, cmd usecases.QuoteExistingCustomerCommand) (*dto.ExistingCustomerQuoteDTO, error)
}

type recommendPlanUseCase interface {
	Execute(ctx context.Context, query usecases.RecommendPlanQuery) (*dto.RecommendationDTO, error)
}

type toggleVatUseCase interface {
	Execute(cmd usecases.ToggleVatCommand) *dto.VatToggleDTO
}
