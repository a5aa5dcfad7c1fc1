package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationRecord is one bank statement snapshot. Unfinished and
// incomplete statements are stored too, so both figures are nullable.
type ReconciliationRecord struct {
	ID                     string
	BankGLAccountID        string
	StatementEndingDate    *time.Time
	EndingBalance          *decimal.Decimal
	IsFinished             bool
	TotalChecksWithdrawals *decimal.Decimal
	TotalDepositsAdditions *decimal.Decimal
}

// IsCheckable reports whether both the statement date and ending balance are known.
func (r ReconciliationRecord) IsCheckable() bool {
	return r.StatementEndingDate != nil && r.EndingBalance != nil
}

type DriftStatus string

const (
	DriftStatusOK      DriftStatus = "OK"
	DriftStatusFlagged DriftStatus = "FLAGGED"
	DriftStatusError   DriftStatus = "ERROR"
)

type DriftResult struct {
	RecordID        string          `json:"recordId"`
	BankGLAccountID string          `json:"bankGlAccountId"`
	StatementDate   time.Time       `json:"statementDate"`
	EndingBalance   decimal.Decimal `json:"-"`
	LocalBalance    decimal.Decimal `json:"-"`
	Drift           decimal.Decimal `json:"-"`
	Status          DriftStatus     `json:"status"`
	IsFinished      bool            `json:"isFinished"`
	Error           string          `json:"error,omitempty"`
}

func (r DriftResult) IsFlagged() bool {
	return r.Status == DriftStatusFlagged
}

// DriftReport aggregates a batch. Checked counts OK and FLAGGED results only.
type DriftReport struct {
	Results            []DriftResult
	Checked            int
	Flagged            int
	Errored            int
	Skipped            int
	TotalAbsoluteDrift decimal.Decimal
	Cancelled          bool
}

type DriftCheckRequest struct {
	BankGLAccountIDs []string `json:"bankGlAccountIds" validate:"omitempty,dive,required"`
	Concurrency      int      `json:"concurrency" validate:"omitempty,min=1,max=64"`
}

type DriftResultResponse struct {
	RecordID        string      `json:"recordId"`
	BankGLAccountID string      `json:"bankGlAccountId"`
	StatementDate   string      `json:"statementDate"`
	EndingBalance   Money       `json:"endingBalance"`
	LocalBalance    Money       `json:"localBalance"`
	Drift           Money       `json:"drift"`
	Status          DriftStatus `json:"status"`
	IsFinished      bool        `json:"isFinished"`
	Error           string      `json:"error,omitempty"`
}

func (r DriftResult) ToModelResponse() DriftResultResponse {
	return DriftResultResponse{
		RecordID:        r.RecordID,
		BankGLAccountID: r.BankGLAccountID,
		StatementDate:   r.StatementDate.Format("2006-01-02"),
		EndingBalance:   NewMoney(r.EndingBalance),
		LocalBalance:    NewMoney(r.LocalBalance),
		Drift:           NewMoney(r.Drift),
		Status:          r.Status,
		IsFinished:      r.IsFinished,
		Error:           r.Error,
	}
}

type DriftReportResponse struct {
	Kind               string                `json:"kind"`
	Checked            int                   `json:"checked"`
	Flagged            int                   `json:"flagged"`
	Errored            int                   `json:"errored"`
	Skipped            int                   `json:"skipped"`
	TotalAbsoluteDrift Money                 `json:"totalAbsoluteDrift"`
	Cancelled          bool                  `json:"cancelled"`
	Results            []DriftResultResponse `json:"results"`
}

func (r DriftReport) ToModelResponse() DriftReportResponse {
	results := make([]DriftResultResponse, 0, len(r.Results))
	for _, res := range r.Results {
		results = append(results, res.ToModelResponse())
	}
	return DriftReportResponse{
		Kind:               "reconciliationDrift",
		Checked:            r.Checked,
		Flagged:            r.Flagged,
		Errored:            r.Errored,
		Skipped:            r.Skipped,
		TotalAbsoluteDrift: NewMoney(r.TotalAbsoluteDrift),
		Cancelled:          r.Cancelled,
		Results:            results,
	}
}

// DriftAlert is the message published for every flagged statement.
type DriftAlert struct {
	Identifier      string `json:"identifier"`
	RecordID        string `json:"recordId"`
	BankGLAccountID string `json:"bankGlAccountId"`
	StatementDate   string `json:"statementDate"`
	EndingBalance   Money  `json:"endingBalance"`
	LocalBalance    Money  `json:"localBalance"`
	Drift           Money  `json:"drift"`
	IsFinished      bool   `json:"isFinished"`
	DetectedAt      string `json:"detectedAt"`
}

func NewDriftAlert(identifier string, r DriftResult, detectedAt time.Time) DriftAlert {
	return DriftAlert{
		Identifier:      identifier,
		RecordID:        r.RecordID,
		BankGLAccountID: r.BankGLAccountID,
		StatementDate:   r.StatementDate.Format("2006-01-02"),
		EndingBalance:   NewMoney(r.EndingBalance),
		LocalBalance:    NewMoney(r.LocalBalance),
		Drift:           NewMoney(r.Drift),
		IsFinished:      r.IsFinished,
		DetectedAt:      detectedAt.Format(time.RFC3339),
	}
}
