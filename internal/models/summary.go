package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSummary is derived for a monthly period and never stored. A nil
// Balance means the figure is unknown and gets computed from the totals.
type FinancialSummary struct {
	TotalCharges    decimal.Decimal
	TotalCredits    decimal.Decimal
	TotalPayments   decimal.Decimal
	TotalBills      decimal.Decimal
	EscrowAmount    decimal.Decimal
	ManagementFees  decimal.Decimal
	NetToOwner      decimal.Decimal
	Balance         *decimal.Decimal
	PreviousBalance decimal.Decimal
	OwnerDraw       decimal.Decimal
}

// PeriodTransaction is a transaction reduced to the one line that represents it.
type PeriodTransaction struct {
	TransactionID   string
	TransactionType TransactionType
	SignedAmount    decimal.Decimal
	AccountName     string
}

type MonthlyLog struct {
	ID              string
	PropertyID      string
	UnitID          string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	PreviousBalance decimal.Decimal
}

type GetMonthlySummaryRequest struct {
	MonthlyLogID string `param:"monthlyLogId" json:"monthlyLogId" validate:"required"`
	UnitID       string `query:"unitId" json:"unitId"`
}

type MonthlySummary struct {
	MonthlyLog   MonthlyLog
	Summary      FinancialSummary
	Transactions []PeriodTransaction
}

type PeriodTransactionResponse struct {
	TransactionID   string          `json:"transactionId"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          Money           `json:"amount"`
	AccountName     string          `json:"accountName"`
}

type MonthlySummaryResponse struct {
	Kind            string                      `json:"kind"`
	MonthlyLogID    string                      `json:"monthlyLogId"`
	PeriodStart     string                      `json:"periodStart"`
	PeriodEnd       string                      `json:"periodEnd"`
	TotalCharges    Money                       `json:"totalCharges"`
	TotalCredits    Money                       `json:"totalCredits"`
	TotalPayments   Money                       `json:"totalPayments"`
	TotalBills      Money                       `json:"totalBills"`
	EscrowAmount    Money                       `json:"escrowAmount"`
	ManagementFees  Money                       `json:"managementFees"`
	OwnerDraw       Money                       `json:"ownerDraw"`
	PreviousBalance Money                       `json:"previousBalance"`
	NetToOwner      Money                       `json:"netToOwner"`
	Balance         *Money                      `json:"balance"`
	Transactions    []PeriodTransactionResponse `json:"transactions"`
}

func (m MonthlySummary) ToModelResponse() MonthlySummaryResponse {
	s := m.Summary
	trx := make([]PeriodTransactionResponse, 0, len(m.Transactions))
	for _, t := range m.Transactions {
		trx = append(trx, PeriodTransactionResponse{
			TransactionID:   t.TransactionID,
			TransactionType: t.TransactionType,
			Amount:          NewMoney(t.SignedAmount),
			AccountName:     t.AccountName,
		})
	}
	resp := MonthlySummaryResponse{
		Kind:            "monthlySummary",
		MonthlyLogID:    m.MonthlyLog.ID,
		PeriodStart:     m.MonthlyLog.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       m.MonthlyLog.PeriodEnd.Format("2006-01-02"),
		TotalCharges:    NewMoney(s.TotalCharges),
		TotalCredits:    NewMoney(s.TotalCredits),
		TotalPayments:   NewMoney(s.TotalPayments),
		TotalBills:      NewMoney(s.TotalBills),
		EscrowAmount:    NewMoney(s.EscrowAmount),
		ManagementFees:  NewMoney(s.ManagementFees),
		OwnerDraw:       NewMoney(s.OwnerDraw),
		PreviousBalance: NewMoney(s.PreviousBalance),
		NetToOwner:      NewMoney(s.NetToOwner),
		Transactions:    trx,
	}
	if s.Balance != nil {
		b := NewMoney(*s.Balance)
		resp.Balance = &b
	}
	return resp
}
