package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/domain/pricing"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/utils"
)

// AmountDTO is a money value as a number for clients and as display text.
type AmountDTO struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Presenter turns domain values into localized DTOs. Every catalog amount
// passes through the VAT policy exactly once.
type Presenter struct {
	lang i18n.Lang
	vat  pricing.VatPolicy
	rule pricing.BundlingRule
}

func NewPresenter(lang i18n.Lang, vat pricing.VatPolicy, rule pricing.BundlingRule) Presenter {
	return Presenter{lang: lang, vat: vat, rule: rule}
}

func (p Presenter) Lang() i18n.Lang         { return p.lang }
func (p Presenter) Vat() pricing.VatPolicy  { return p.vat }
func (p Presenter) text(t i18n.Text) string { return t.Get(p.lang) }

// Amount applies the VAT policy to a VAT-inclusive catalog amount.
func (p Presenter) Amount(d decimal.Decimal) AmountDTO {
	return p.raw(p.vat.Apply(d))
}

// raw formats d as is.
func (p Presenter) raw(d decimal.Decimal) AmountDTO {
	return AmountDTO{
		Value:   utils.MoneyFloat(d),
		Display: utils.FormatAmount(d, p.lang),
	}
}

// VatDTO is the VAT summary for a total.
type VatDTO struct {
	IncludeVat  bool      `json:"include_vat"`
	RatePercent string    `json:"rate_percent"`
	Label       string    `json:"label"`
	Net         AmountDTO `json:"net"`
	Vat         AmountDTO `json:"vat"`
	Total       AmountDTO `json:"total"`
}

func (p Presenter) VatSummary(total decimal.Decimal) VatDTO {
	b := p.vat.Breakdown(total)
	rate := utils.FormatPercent(p.vat.RatePercent())
	return VatDTO{
		IncludeVat:  p.vat.IncludeVat(),
		RatePercent: rate,
		Label:       p.text(i18n.Vat(rate)),
		Net:         p.raw(b.Net),
		Vat:         p.raw(b.Vat),
		Total:       p.raw(b.Total),
	}
}

// VatToggleDTO echoes a VAT display preference.
type VatToggleDTO struct {
	IncludeVat  bool   `json:"include_vat"`
	RatePercent string `json:"rate_percent"`
	Label       string `json:"label"`
}

func (p Presenter) VatToggle() VatToggleDTO {
	rate := utils.FormatPercent(p.vat.RatePercent())
	return VatToggleDTO{
		IncludeVat:  p.vat.IncludeVat(),
		RatePercent: rate,
		Label:       p.text(i18n.Vat(rate)),
	}
}

// PlanRefDTO identifies a plan in quote responses.
type PlanRefDTO struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	IsProfessional bool   `json:"is_professional"`
}

func (p Presenter) PlanRef(plan *catalog.Plan) *PlanRefDTO {
	if plan == nil {
		return nil
	}
	return &PlanRefDTO{
		Code:           plan.Code(),
		Name:           p.text(plan.Name()),
		IsProfessional: p.rule.IsProfessional(plan),
	}
}
