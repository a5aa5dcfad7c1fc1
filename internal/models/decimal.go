package models

import (
	"github.com/shopspring/decimal"
)

// Money is the wire form of every currency figure: an unquoted JSON number
// with exactly two fractional digits, e.g. 1250.50 or -2500.00.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}
