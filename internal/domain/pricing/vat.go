package pricing

import "github.com/shopspring/decimal"

// DefaultVatRate is the Saudi standard VAT rate.
var DefaultVatRate = decimal.RequireFromString("0.15")

// VatPolicy decides how VAT-inclusive catalog amounts are displayed.
//
// With VAT display on, amounts are shown as stored (gross) and the VAT
// portion is reported. With it off, amounts are shown net of VAT and the
// VAT portion is zero.
type VatPolicy struct {
	rate       decimal.Decimal
	includeVat bool
}

func NewVatPolicy(rate decimal.Decimal, includeVat bool) VatPolicy {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	return VatPolicy{rate: rate, includeVat: includeVat}
}

func DefaultVatPolicy() VatPolicy {
	return NewVatPolicy(DefaultVatRate, false)
}

func (p VatPolicy) Rate() decimal.Decimal {
	return p.rate
}

// RatePercent is the rate as a percentage, e.g. 15.
func (p VatPolicy) RatePercent() decimal.Decimal {
	return p.rate.Mul(hundred)
}

func (p VatPolicy) IncludeVat() bool {
	return p.includeVat
}

// Toggle flips the display flag; nothing else changes.
func (p VatPolicy) Toggle() VatPolicy {
	return VatPolicy{rate: p.rate, includeVat: !p.includeVat}
}

func (p VatPolicy) WithIncludeVat(include bool) VatPolicy {
	return VatPolicy{rate: p.rate, includeVat: include}
}

// Net strips VAT from a VAT-inclusive amount.
func (p VatPolicy) Net(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(1).Add(p.rate))
}

// Apply returns the display amount for a VAT-inclusive amount.
func (p VatPolicy) Apply(amount decimal.Decimal) decimal.Decimal {
	if p.includeVat {
		return amount
	}
	return p.Net(amount)
}

// VatAmount is the VAT contained in amount when VAT display is on, else 0.
func (p VatPolicy) VatAmount(amount decimal.Decimal) decimal.Decimal {
	if !p.includeVat {
		return decimal.Zero
	}
	return amount.Sub(p.Net(amount))
}

// VatBreakdown splits a displayed total. Net + Vat == Total.
type VatBreakdown struct {
	Net   decimal.Decimal
	Vat   decimal.Decimal
	Total decimal.Decimal
}

func (p VatPolicy) Breakdown(amount decimal.Decimal) VatBreakdown {
	return VatBreakdown{
		Net:   p.Net(amount),
		Vat:   p.VatAmount(amount),
		Total: p.Apply(amount),
	}
}
