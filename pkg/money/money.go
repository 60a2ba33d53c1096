// Package money formats decimal amounts for display in WhatsApp messages and
// invoice documents. Storage and arithmetic stay in shopspring/decimal; this
// package is display-only.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with its currency code and grouped thousands,
// always with two decimals: Format("AED", 1234.5) -> "AED 1,234.50".
func Format(currency string, amount decimal.Decimal) string {
	f, _ := amount.Float64()
	if currency == "" {
		return printer.Sprintf("%v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	return printer.Sprintf("%s %v", currency, number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
