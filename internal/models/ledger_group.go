package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Basis string

const (
	BasisCash    Basis = "cash"
	BasisAccrual Basis = "accrual"
)

// ParseBasis returns def for an empty value and false for anything unknown.
func ParseBasis(s string, def Basis) (Basis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, true
	case string(BasisCash):
		return BasisCash, true
	case string(BasisAccrual):
		return BasisAccrual, true
	default:
		return "", false
	}
}

// LedgerGroup is every line of one gl account. Net follows the account's normal
// balance; DebitNet is the raw debit-minus-credit sum, which is what balances to
// zero across a closed batch.
type LedgerGroup struct {
	GLAccountID    string
	GLAccountName  string
	GLAccountType  GLAccountType
	Lines          []LedgerLine
	OpeningBalance decimal.Decimal
	Net            decimal.Decimal
	DebitNet       decimal.Decimal
}

func (g LedgerGroup) ClosingBalance() decimal.Decimal {
	return g.OpeningBalance.Add(g.Net)
}

type GeneralLedgerRequest struct {
	PropertyID string `query:"propertyId" json:"propertyId" validate:"required_without=UnitID"`
	UnitID     string `query:"unitId" json:"unitId"`
	From       string `query:"from" json:"from" validate:"required,date"`
	To         string `query:"to" json:"to" validate:"required,date"`
	Basis      string `query:"basis" json:"basis" validate:"omitempty,oneof=cash accrual"`
}

// LedgerQuery filters the ledger snapshot. Nil dates are open bounds, From is
// inclusive and To is inclusive of the whole day.
type LedgerQuery struct {
	PropertyID   string
	UnitID       string
	MonthlyLogID string
	GLAccountIDs []string
	From         *time.Time
	To           *time.Time
}

type LedgerGroupResponse struct {
	GLAccountID    string               `json:"glAccountId"`
	GLAccountName  string               `json:"glAccountName"`
	GLAccountType  GLAccountType        `json:"glAccountType"`
	OpeningBalance Money                `json:"openingBalance"`
	Net            Money                `json:"net"`
	ClosingBalance Money                `json:"closingBalance"`
	Lines          []LedgerLineResponse `json:"lines"`
}

func (g LedgerGroup) ToModelResponse() LedgerGroupResponse {
	lines := make([]LedgerLineResponse, 0, len(g.Lines))
	for _, l := range g.Lines {
		lines = append(lines, l.ToModelResponse())
	}
	return LedgerGroupResponse{
		GLAccountID:    g.GLAccountID,
		GLAccountName:  g.GLAccountName,
		GLAccountType:  g.GLAccountType,
		OpeningBalance: NewMoney(g.OpeningBalance),
		Net:            NewMoney(g.Net),
		ClosingBalance: NewMoney(g.ClosingBalance()),
		Lines:          lines,
	}
}

type GeneralLedger struct {
	Basis    Basis
	Groups   []LedgerGroup
	Adapted  AdaptResult
	FromDate string
	ToDate   string
}

type GeneralLedgerResponse struct {
	Kind           string                `json:"kind"`
	Basis          Basis                 `json:"basis"`
	From           string                `json:"from"`
	To             string                `json:"to"`
	MissingLinkage int                   `json:"missingLinkage"`
	Warnings       []DataQualityWarning  `json:"warnings"`
	Groups         []LedgerGroupResponse `json:"groups"`
}

func (g GeneralLedger) ToModelResponse() GeneralLedgerResponse {
	groups := make([]LedgerGroupResponse, 0, len(g.Groups))
	for _, grp := range g.Groups {
		groups = append(groups, grp.ToModelResponse())
	}
	warnings := g.Adapted.Warnings
	if warnings == nil {
		warnings = []DataQualityWarning{}
	}
	return GeneralLedgerResponse{
		Kind:           "generalLedger",
		Basis:          g.Basis,
		From:           g.FromDate,
		To:             g.ToDate,
		MissingLinkage: g.Adapted.MissingLinkage,
		Warnings:       warnings,
		Groups:         groups,
	}
}
