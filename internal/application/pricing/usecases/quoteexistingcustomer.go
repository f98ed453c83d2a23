package usecases

import (
	"context"
	"time"

	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	"github.com/jaras-platform/jaras/internal/domain/pricing"
	"github.com/jaras-platform/jaras/internal/infrastructure/metrics"
	"github.com/jaras-platform/jaras/internal/shared/biztime"
	"github.com/jaras-platform/jaras/internal/shared/constants"
	apperrors "github.com/jaras-platform/jaras/internal/shared/errors"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

type QuoteExistingCustomerCommand struct {
	Lang            i18n.Lang
	IncludeVat      *bool
	CurrentPlanCode string
	NewPlanCode     string
	// StartDate and EndDate are YYYY-MM-DD; start defaults to today and
	// end to start plus the default term.
	StartDate  string
	EndDate    string
	AddonCodes []string
}

type QuoteExistingCustomerUseCase struct {
	provider SnapshotProvider
	settings Settings
	logger   logger.Interface
}

func NewQuoteExistingCustomerUseCase(
	provider SnapshotProvider,
	settings Settings,
	logger logger.Interface,
) *QuoteExistingCustomerUseCase {
	return &QuoteExistingCustomerUseCase{
		provider: provider,
		settings: settings,
		logger:   logger,
	}
}

func (uc *QuoteExistingCustomerUseCase) Execute(ctx context.Context, cmd QuoteExistingCustomerCommand) (*dto.ExistingCustomerQuoteDTO, error) {
	start, err := parseDateOr(cmd.StartDate, "start_date", biztime.Today())
	if err != nil {
		return nil, err
	}

	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		uc.logger.Warnw("catalog not available for existing customer quote", "error", err)
		return nil, CatalogError(err)
	}

	sel := pricing.StartExistingCustomer(snap, uc.settings.Rule, start, uc.settings.DefaultTermMonths)
	if cmd.EndDate != "" {
		end, err := parseDateOr(cmd.EndDate, "end_date", time.Time{})
		if err != nil {
			return nil, err
		}
		sel.SetEndDate(end)
	}
	if cmd.CurrentPlanCode != "" {
		if err := sel.SelectCurrentPlan(cmd.CurrentPlanCode); err != nil {
			return nil, selectionError(err)
		}
	}
	if cmd.NewPlanCode != "" {
		if err := sel.SelectNewPlan(cmd.NewPlanCode); err != nil {
			return nil, selectionError(err)
		}
	}
	if cmd.AddonCodes != nil {
		if err := sel.SetAddons(cmd.AddonCodes); err != nil {
			return nil, selectionError(err)
		}
	}

	quote := sel.Quote()
	metrics.RecordQuote(constants.FlowExistingCustomer)
	uc.logger.Debugw("existing customer quote computed",
		"remaining_days", quote.RemainingDays,
		"change", quote.ChangeType,
		"grand_total", quote.GrandTotal.StringFixed(2))

	return uc.settings.Presenter(cmd.Lang, cmd.IncludeVat).ExistingCustomerQuote(quote), nil
}

func parseDateOr(s, field string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	t, err := biztime.ParseDate(s)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(constants.ErrMsgValidationFailed, field+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
