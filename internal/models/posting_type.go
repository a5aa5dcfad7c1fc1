package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PostingType string

const (
	PostingTypeDebit  PostingType = "Debit"
	PostingTypeCredit PostingType = "Credit"
)

// ParsePostingType matches case-insensitively. Only "debit" and "dr" are debits,
// every other value, including garbage, is treated as a credit.
func ParsePostingType(s string) PostingType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit", "dr":
		return PostingTypeDebit
	default:
		return PostingTypeCredit
	}
}

func (p PostingType) IsDebit() bool {
	return p == PostingTypeDebit
}

// Signed applies the debit-positive convention to an unsigned amount.
func (p PostingType) Signed(amount decimal.Decimal) decimal.Decimal {
	if p.IsDebit() {
		return amount.Abs()
	}
	return amount.Abs().Neg()
}
