package models

import (
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeCharge              TransactionType = "Charge"
	TransactionTypePayment             TransactionType = "Payment"
	TransactionTypeCredit              TransactionType = "Credit"
	TransactionTypeBill                TransactionType = "Bill"
	TransactionTypeDeposit             TransactionType = "Deposit"
	TransactionTypeGeneralJournalEntry TransactionType = "GeneralJournalEntry"
	TransactionTypeTransfer            TransactionType = "Transfer"
	TransactionTypeOther               TransactionType = "Other"
)

var knownTransactionTypes = map[string]TransactionType{
	string(TransactionTypeCharge):              TransactionTypeCharge,
	string(TransactionTypePayment):             TransactionTypePayment,
	string(TransactionTypeCredit):              TransactionTypeCredit,
	string(TransactionTypeBill):                TransactionTypeBill,
	string(TransactionTypeDeposit):             TransactionTypeDeposit,
	string(TransactionTypeGeneralJournalEntry): TransactionTypeGeneralJournalEntry,
	string(TransactionTypeTransfer):            TransactionTypeTransfer,
}

// ParseTransactionType accepts any casing or separator style, e.g.
// "general_journal_entry", "General Journal Entry" and "GeneralJournalEntry".
func ParseTransactionType(s string) TransactionType {
	key := strcase.ToCamel(strings.TrimSpace(s))
	if tt, ok := knownTransactionTypes[key]; ok {
		return tt
	}
	for k, tt := range knownTransactionTypes {
		if strings.EqualFold(k, key) {
			return tt
		}
	}
	return TransactionTypeOther
}

func (t TransactionType) IsPayment() bool {
	return t == TransactionTypePayment
}

func (t TransactionType) IsCharge() bool {
	return t == TransactionTypeCharge
}

// Transaction is the header of a ledger entry. TotalAmount is informational only,
// the lines are the source of truth.
type Transaction struct {
	ID              string
	Date            time.Time
	TransactionType TransactionType
	TotalAmount     decimal.Decimal
	Memo            string
	LeaseID         string
	MonthlyLogID    string
}

type TransactionLine struct {
	ID            string
	TransactionID string
	GLAccountID   string
	PostingType   PostingType
	Amount        decimal.Decimal
	PropertyID    string
	UnitID        string
	Date          time.Time
	CreatedAt     time.Time
	Memo          string
}
