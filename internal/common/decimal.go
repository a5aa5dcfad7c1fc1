package common

import "github.com/shopspring/decimal"

// CentTolerance is the smallest discrepancy treated as real money.
var CentTolerance = decimal.New(1, -2)

// DecimalPtr returns a pointer to a copy of d.
func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
