package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	"github.com/jaras-platform/jaras/internal/domain/pricing"
	"github.com/jaras-platform/jaras/internal/infrastructure/metrics"
	"github.com/jaras-platform/jaras/internal/shared/constants"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

type QuoteNewCustomerCommand struct {
	Lang       i18n.Lang
	IncludeVat *bool
	UnitsCount int
	// PlanCode overrides the recommended plan when set.
	PlanCode string
	// AddonCodes replaces the plan's default selection when non-nil.
	AddonCodes         []string
	DiscountPercentage decimal.Decimal
}

type QuoteNewCustomerUseCase struct {
	provider SnapshotProvider
	settings Settings
	logger   logger.Interface
}

func NewQuoteNewCustomerUseCase(
	provider SnapshotProvider,
	settings Settings,
	logger logger.Interface,
) *QuoteNewCustomerUseCase {
	return &QuoteNewCustomerUseCase{
		provider: provider,
		settings: settings,
		logger:   logger,
	}
}

func (uc *QuoteNewCustomerUseCase) Execute(ctx context.Context, cmd QuoteNewCustomerCommand) (*dto.NewCustomerQuoteDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		uc.logger.Warnw("catalog not available for new customer quote", "error", err)
		return nil, CatalogError(err)
	}

	sel := pricing.StartNewCustomer(snap, uc.settings.Rule)
	sel.SetUnits(cmd.UnitsCount)
	if cmd.PlanCode != "" {
		if err := sel.SelectPlan(cmd.PlanCode); err != nil {
			return nil, selectionError(err)
		}
	}
	if cmd.AddonCodes != nil {
		if err := sel.SetAddons(cmd.AddonCodes); err != nil {
			return nil, selectionError(err)
		}
	}
	sel.SetDiscount(cmd.DiscountPercentage)

	quote := sel.Quote()
	metrics.RecordQuote(constants.FlowNewCustomer)

	planCode := ""
	if quote.Plan != nil {
		planCode = quote.Plan.Code()
	}
	uc.logger.Debugw("new customer quote computed",
		"units", quote.UnitsCount,
		"plan", planCode,
		"grand_total", quote.GrandTotal.StringFixed(2))

	return uc.settings.Presenter(cmd.Lang, cmd.IncludeVat).NewCustomerQuote(quote), nil
}
