package views

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount with the symbol of the given ISO
// currency code, e.g. "$12.80". Unknown codes fall back to "CODE 12.80".
func FormatAmount(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", code, amount.StringFixed(2))
	}
	value, _ := amount.Float64()
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}

// FormatCount renders an integer with digit grouping, e.g. "12,345".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
