package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is the raw (transaction, line, gl account) join as it comes out of storage.
// GLAccount is nil when only the id is known, GLAccountID is empty when the line
// has no linkage at all.
type LedgerRow struct {
	LineID          string
	TransactionID   string
	TransactionType string
	Date            time.Time
	CreatedAt       time.Time
	Amount          decimal.Decimal
	PostingType     string
	PropertyID      string
	UnitID          string
	Memo            string
	GLAccountID     string
	GLAccount       *GLAccount
}

// LedgerLine is the canonical line every computation works on.
type LedgerLine struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
	Amount          decimal.Decimal `json:"-"`
	PostingType     PostingType     `json:"postingType"`
	TransactionID   string          `json:"transactionId"`
	TransactionType TransactionType `json:"transactionType"`
	PropertyID      string          `json:"propertyId,omitempty"`
	UnitID          string          `json:"unitId,omitempty"`
	Memo            string          `json:"memo,omitempty"`

	GLAccountID                  string        `json:"glAccountId"`
	GLAccountName                string        `json:"glAccountName"`
	GLAccountType                GLAccountType `json:"glAccountType"`
	GLSubType                    string        `json:"-"`
	GLCategory                   string        `json:"-"`
	GLIsBankAccount              bool          `json:"-"`
	GLIsSecurityDepositLiability bool          `json:"-"`
	GLExcludeFromCash            bool          `json:"-"`
}

// SignedAmount is debit positive, credit negative.
func (l LedgerLine) SignedAmount() decimal.Decimal {
	return l.PostingType.Signed(l.Amount)
}

// NormalSignedAmount is positive when the line increases its account's normal balance.
func (l LedgerLine) NormalSignedAmount() decimal.Decimal {
	signed := l.SignedAmount()
	if l.GLAccountType.IsDebitNormal() {
		return signed
	}
	return signed.Neg()
}

// Account rebuilds the gl account view carried on the line.
func (l LedgerLine) Account() GLAccount {
	return GLAccount{
		ID:                         l.GLAccountID,
		Type:                       l.GLAccountType,
		SubType:                    l.GLSubType,
		Name:                       l.GLAccountName,
		Category:                   l.GLCategory,
		IsBankAccount:              l.GLIsBankAccount,
		IsSecurityDepositLiability: l.GLIsSecurityDepositLiability,
		ExcludeFromCashBalances:    l.GLExcludeFromCash,
	}
}

type WarningKind string

const WarningInconsistentTransaction WarningKind = "InconsistentTransaction"

// DataQualityWarning is diagnostic only, computations never stop on it.
type DataQualityWarning struct {
	Kind          WarningKind `json:"kind"`
	TransactionID string      `json:"transactionId"`
	Debits        Money       `json:"debits"`
	Credits       Money       `json:"credits"`
}

type AdaptResult struct {
	Lines          []LedgerLine
	MissingLinkage int
	Warnings       []DataQualityWarning
}

type LedgerLineResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	TransactionID   string          `json:"transactionId"`
	TransactionType TransactionType `json:"transactionType"`
	PostingType     PostingType     `json:"postingType"`
	Amount          Money           `json:"amount"`
	UnitID          string          `json:"unitId,omitempty"`
	Memo            string          `json:"memo,omitempty"`
}

func (l LedgerLine) ToModelResponse() LedgerLineResponse {
	return LedgerLineResponse{
		ID:              l.ID,
		Date:            l.Date.Format("2006-01-02"),
		TransactionID:   l.TransactionID,
		TransactionType: l.TransactionType,
		PostingType:     l.PostingType,
		Amount:          NewMoney(l.Amount),
		UnitID:          l.UnitID,
		Memo:            l.Memo,
	}
}
