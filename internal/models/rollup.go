package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RollupScope selects the lines of one property, optionally narrowed to a unit.
type RollupScope struct {
	PropertyID string `json:"propertyId"`
	UnitID     string `json:"unitId,omitempty"`
}

func (s RollupScope) IsEmpty() bool {
	return s.PropertyID == "" && s.UnitID == ""
}

type RollupSource string

const (
	RollupSourceAuthoritative RollupSource = "authoritative"
	RollupSourceDerived       RollupSource = "derived"
)

// RollupValues always satisfies AvailableBalance = CashBalance + SecurityDeposits - Reserve.
// Prepayments is reported next to the law and held negative like deposits.
type RollupValues struct {
	CashBalance      decimal.Decimal
	SecurityDeposits decimal.Decimal
	Prepayments      decimal.Decimal
	Reserve          decimal.Decimal
	AvailableBalance decimal.Decimal
}

func NewRollupValues(cash, securityDeposits, reserve decimal.Decimal) RollupValues {
	return RollupValues{
		CashBalance:      cash,
		SecurityDeposits: securityDeposits,
		Reserve:          reserve,
		AvailableBalance: cash.Add(securityDeposits).Sub(reserve),
	}
}

type RollupDiagnostics struct {
	BankLineCount              int `json:"bankLineCount"`
	CashProxyLineCount         int `json:"cashProxyLineCount"`
	ExcludedDepositChargeLines int `json:"excludedDepositChargeLines"`
	ExcludedAfterAsOf          int `json:"excludedAfterAsOf"`
	MissingLinkage             int `json:"missingLinkage"`
}

// RollupResult is tagged with where its numbers came from. Build it with
// Authoritative or Derived only.
type RollupResult struct {
	Scope       RollupScope
	AsOf        time.Time
	Source      RollupSource
	Values      RollupValues
	Diagnostics *RollupDiagnostics
	Warnings    []DataQualityWarning
}

func Authoritative(scope RollupScope, asOf time.Time, v RollupValues) RollupResult {
	return RollupResult{Scope: scope, AsOf: asOf, Source: RollupSourceAuthoritative, Values: v}
}

func Derived(scope RollupScope, asOf time.Time, v RollupValues, diag RollupDiagnostics, warnings []DataQualityWarning) RollupResult {
	return RollupResult{
		Scope:       scope,
		AsOf:        asOf,
		Source:      RollupSourceDerived,
		Values:      v,
		Diagnostics: &diag,
		Warnings:    warnings,
	}
}

func (r RollupResult) IsAuthoritative() bool {
	return r.Source == RollupSourceAuthoritative
}

func (r RollupResult) IsDerived() bool {
	return r.Source == RollupSourceDerived
}

// AgreesWith compares the balance law figures of both results within tolerance.
func (r RollupResult) AgreesWith(other RollupResult, tolerance decimal.Decimal) bool {
	return r.Divergence(other).LessThanOrEqual(tolerance.Abs())
}

// Divergence is the largest absolute difference between the two results' figures.
func (r RollupResult) Divergence(other RollupResult) decimal.Decimal {
	pairs := [][2]decimal.Decimal{
		{r.Values.CashBalance, other.Values.CashBalance},
		{r.Values.SecurityDeposits, other.Values.SecurityDeposits},
		{r.Values.Reserve, other.Values.Reserve},
		{r.Values.AvailableBalance, other.Values.AvailableBalance},
	}
	maxDiff := decimal.Zero
	for _, p := range pairs {
		if d := p[0].Sub(p[1]).Abs(); d.GreaterThan(maxDiff) {
			maxDiff = d
		}
	}
	return maxDiff
}

// AuthoritativeBalance is the raw answer of the pre-aggregated balance source.
// Any field may be missing.
type AuthoritativeBalance struct {
	CashBalance      *decimal.Decimal `json:"cashBalance"`
	SecurityDeposits *decimal.Decimal `json:"securityDeposits"`
	Prepayments      *decimal.Decimal `json:"prepayments"`
	Reserve          *decimal.Decimal `json:"reserve"`
	AvailableBalance *decimal.Decimal `json:"availableBalance"`
}

// IsWellFormed requires cash and deposits, and when available is present it
// must match the balance law within tolerance.
func (b *AuthoritativeBalance) IsWellFormed(reserve, tolerance decimal.Decimal) bool {
	if b == nil || b.CashBalance == nil || b.SecurityDeposits == nil {
		return false
	}
	if b.AvailableBalance == nil {
		return true
	}
	r := reserve
	if b.Reserve != nil {
		r = *b.Reserve
	}
	expected := b.CashBalance.Add(*b.SecurityDeposits).Sub(r)
	return expected.Sub(*b.AvailableBalance).Abs().LessThanOrEqual(tolerance)
}

// Values applies the balance law over the provider figures. The reserve from
// the provider wins over the caller's when present.
func (b *AuthoritativeBalance) Values(reserve decimal.Decimal) RollupValues {
	r := reserve
	if b.Reserve != nil {
		r = *b.Reserve
	}
	v := NewRollupValues(*b.CashBalance, *b.SecurityDeposits, r)
	if b.Prepayments != nil {
		v.Prepayments = *b.Prepayments
	}
	return v
}

type GetRollupRequest struct {
	PropertyID string `param:"propertyId" json:"propertyId" validate:"required"`
	UnitID     string `query:"unitId" json:"unitId"`
	AsOf       string `query:"asOf" json:"asOf" validate:"omitempty,date"`
}

type RollupRequest struct {
	Scope RollupScope
	AsOf  time.Time
}

type RollupResponse struct {
	Kind             string               `json:"kind"`
	PropertyID       string               `json:"propertyId"`
	UnitID           string               `json:"unitId,omitempty"`
	AsOf             string               `json:"asOf"`
	Source           RollupSource         `json:"source"`
	CashBalance      Money                `json:"cashBalance"`
	SecurityDeposits Money                `json:"securityDeposits"`
	Prepayments      Money                `json:"prepayments"`
	Reserve          Money                `json:"reserve"`
	AvailableBalance Money                `json:"availableBalance"`
	Diagnostics      *RollupDiagnostics   `json:"diagnostics,omitempty"`
	Warnings         []DataQualityWarning `json:"warnings,omitempty"`
}

func (r RollupResult) ToModelResponse() RollupResponse {
	return RollupResponse{
		Kind:             "propertyFinance",
		PropertyID:       r.Scope.PropertyID,
		UnitID:           r.Scope.UnitID,
		AsOf:             r.AsOf.Format("2006-01-02"),
		Source:           r.Source,
		CashBalance:      NewMoney(r.Values.CashBalance),
		SecurityDeposits: NewMoney(r.Values.SecurityDeposits),
		Prepayments:      NewMoney(r.Values.Prepayments),
		Reserve:          NewMoney(r.Values.Reserve),
		AvailableBalance: NewMoney(r.Values.AvailableBalance),
		Diagnostics:      r.Diagnostics,
		Warnings:         r.Warnings,
	}
}

// RollupComparison holds both computation paths for the same scope. Authoritative
// is nil when the provider had no usable answer.
type RollupComparison struct {
	Authoritative *RollupResult
	Derived       RollupResult
	Divergence    decimal.Decimal
	Agrees        bool
}

type RollupComparisonResponse struct {
	Kind          string          `json:"kind"`
	Authoritative *RollupResponse `json:"authoritative"`
	Derived       RollupResponse  `json:"derived"`
	Divergence    Money           `json:"divergence"`
	Agrees        bool            `json:"agrees"`
}

func (c RollupComparison) ToModelResponse() RollupComparisonResponse {
	resp := RollupComparisonResponse{
		Kind:       "propertyFinanceComparison",
		Derived:    c.Derived.ToModelResponse(),
		Divergence: NewMoney(c.Divergence),
		Agrees:     c.Agrees,
	}
	if c.Authoritative != nil {
		a := c.Authoritative.ToModelResponse()
		resp.Authoritative = &a
	}
	return resp
}
