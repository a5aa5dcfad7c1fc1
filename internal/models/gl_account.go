package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/propledger/go-fp-rollup/internal/common"
)

type GLAccountType string

const (
	GLAccountTypeAsset     GLAccountType = "asset"
	GLAccountTypeLiability GLAccountType = "liability"
	GLAccountTypeIncome    GLAccountType = "income"
	GLAccountTypeExpense   GLAccountType = "expense"
	GLAccountTypeEquity    GLAccountType = "equity"
)

func ParseGLAccountType(s string) GLAccountType {
	return GLAccountType(strings.ToLower(strings.TrimSpace(s)))
}

// IsDebitNormal reports whether a debit increases the account balance.
func (t GLAccountType) IsDebitNormal() bool {
	return t == GLAccountTypeAsset || t == GLAccountTypeExpense
}

type GLAccount struct {
	ID                         string        `json:"id"`
	Type                       GLAccountType `json:"type"`
	SubType                    string        `json:"subType"`
	Name                       string        `json:"name"`
	DefaultAccountName         string        `json:"defaultAccountName"`
	AccountNumber              string        `json:"accountNumber"`
	Category                   string        `json:"category"`
	IsBankAccount              bool          `json:"isBankAccount"`
	IsSecurityDepositLiability bool          `json:"isSecurityDepositLiability"`
	ExcludeFromCashBalances    bool          `json:"excludeFromCashBalances"`
}

// Validate checks the routing flags, a ledger account cannot be both.
func (a GLAccount) Validate() error {
	if a.IsBankAccount && a.IsSecurityDepositLiability {
		return fmt.Errorf("%w: %s", common.ErrGLAccountRouting, a.ID)
	}
	return nil
}

// GLLookup is an immutable id -> account table. Build it once per request and
// share it freely between goroutines.
type GLLookup struct {
	accounts map[string]GLAccount
}

func NewGLLookup(accounts []GLAccount) GLLookup {
	m := make(map[string]GLAccount, len(accounts))
	for _, a := range accounts {
		m[a.ID] = a
	}
	return GLLookup{accounts: m}
}

func (l GLLookup) Get(id string) (GLAccount, bool) {
	a, ok := l.accounts[id]
	return a, ok
}

func (l GLLookup) Len() int {
	return len(l.accounts)
}

// IDs returns the account ids in ascending order.
func (l GLLookup) IDs() []string {
	ids := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
