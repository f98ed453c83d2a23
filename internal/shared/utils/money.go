package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// Amounts are always grouped en-US style (1,150) in both languages.
var amountPrinter = message.NewPrinter(language.English)

// RoundMoney rounds to halalas (2 decimal places).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MoneyFloat converts to a JSON-friendly float rounded to 2 decimal places.
func MoneyFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// FormatWhole renders d without fraction digits and with thousands
// separators, e.g. 1149.5 -> "1,150".
func FormatWhole(d decimal.Decimal) string {
	return amountPrinter.Sprintf("%d", d.Round(0).IntPart())
}

// FormatAmount renders d as a whole amount followed by the localized
// currency label.
func FormatAmount(d decimal.Decimal, lang i18n.Lang) string {
	return FormatWhole(d) + " " + i18n.Currency.Get(lang)
}

// FormatPercent renders a percentage without trailing zeros ("10", "12.5").
func FormatPercent(d decimal.Decimal) string {
	return d.String()
}
