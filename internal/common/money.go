package common

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = money.USD

// FormatCurrency renders a major unit amount with the currency's grapheme,
// thousand separator and fraction, e.g. -$1,234.50. Unknown codes fall back to USD.
func FormatCurrency(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}

	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
