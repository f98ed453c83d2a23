package usecases

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/domain/pricing"
	sharedConfig "github.com/jaras-platform/jaras/internal/shared/config"
	"github.com/jaras-platform/jaras/internal/shared/constants"
	apperrors "github.com/jaras-platform/jaras/internal/shared/errors"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// SnapshotProvider hands out the shared catalog snapshot.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
}

// Settings are the pricing knobs shared by every quote.
type Settings struct {
	Rule                pricing.BundlingRule
	VatRate             decimal.Decimal
	IncludeVatByDefault bool
	DefaultTermMonths   int
}

func DefaultSettings() Settings {
	return Settings{
		Rule:              pricing.DefaultBundlingRule(),
		VatRate:           pricing.DefaultVatRate,
		DefaultTermMonths: 6,
	}
}

// SettingsFromConfig fills unset values from DefaultSettings.
func SettingsFromConfig(cfg *sharedConfig.PricingConfig) Settings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}
	if cfg.ProfessionalPlanCode != "" {
		s.Rule.ProfessionalPlanCode = cfg.ProfessionalPlanCode
	}
	if cfg.OTAAddonCode != "" {
		s.Rule.OTAAddonCode = cfg.OTAAddonCode
	}
	if cfg.VatRate > 0 {
		s.VatRate = decimal.NewFromFloat(cfg.VatRate)
	}
	if cfg.DefaultTermMonths > 0 {
		s.DefaultTermMonths = cfg.DefaultTermMonths
	}
	s.IncludeVatByDefault = cfg.IncludeVatByDefault
	return s
}

// VatPolicy resolves the display flag, falling back to the configured
// default when the caller did not send one.
func (s Settings) VatPolicy(includeVat *bool) pricing.VatPolicy {
	include := s.IncludeVatByDefault
	if includeVat != nil {
		include = *includeVat
	}
	return pricing.NewVatPolicy(s.VatRate, include)
}

func (s Settings) Presenter(lang i18n.Lang, includeVat *bool) dto.Presenter {
	if lang == "" {
		lang = i18n.Default
	}
	return dto.NewPresenter(lang, s.VatPolicy(includeVat), s.Rule)
}

// CatalogError maps a provider error to the API error taxonomy.
func CatalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		return apperrors.NewUnavailableError(constants.ErrMsgCatalogUnavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewUnavailableError(constants.ErrMsgCatalogLoading)
	default:
		return apperrors.NewInternalError(constants.ErrMsgInternalServerError, err.Error())
	}
}

// selectionError turns unknown plan and add-on codes into validation errors.
func selectionError(err error) error {
	if errors.Is(err, catalog.ErrPlanNotFound) || errors.Is(err, catalog.ErrAddonNotFound) {
		return apperrors.NewValidationError(constants.ErrMsgValidationFailed, err.Error())
	}
	return err
}
