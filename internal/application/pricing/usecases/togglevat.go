package usecases

import (
	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

type ToggleVatCommand struct {
	Lang i18n.Lang
	// IncludeVat is the client's current flag; nil means the default.
	IncludeVat *bool
}

// ToggleVatUseCase flips a client's VAT display preference. Nothing is
// stored; the client sends the flag back with later requests.
type ToggleVatUseCase struct {
	settings Settings
}

func NewToggleVatUseCase(settings Settings) *ToggleVatUseCase {
	return &ToggleVatUseCase{settings: settings}
}

func (uc *ToggleVatUseCase) Execute(cmd ToggleVatCommand) *dto.VatToggleDTO {
	policy := uc.settings.VatPolicy(cmd.IncludeVat).Toggle()
	lang := cmd.Lang
	if lang == "" {
		lang = i18n.Default
	}
	out := dto.NewPresenter(lang, policy, uc.settings.Rule).VatToggle()
	return &out
}
