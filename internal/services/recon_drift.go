package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const DefaultDriftConcurrency = 4

// BookBalanceProvider answers the locally computed balance of a bank account.
// A nil balance means the ledger has no answer.
type BookBalanceProvider interface {
	BookBalance(ctx context.Context, bankGLAccountID string, asOf time.Time) (*decimal.Decimal, error)
}

// BookBalanceFunc adapts a function to BookBalanceProvider.
type BookBalanceFunc func(ctx context.Context, bankGLAccountID string, asOf time.Time) (*decimal.Decimal, error)

func (f BookBalanceFunc) BookBalance(ctx context.Context, bankGLAccountID string, asOf time.Time) (*decimal.Decimal, error) {
	return f(ctx, bankGLAccountID, asOf)
}

type DriftOptions struct {
	Concurrency int
	// Tolerance is the largest drift still reported OK. Nil means one cent,
	// zero flags every difference.
	Tolerance *decimal.Decimal
}

func (o DriftOptions) withDefaults() DriftOptions {
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	tolerance := common.CentTolerance
	if o.Tolerance != nil {
		tolerance = o.Tolerance.Abs()
	}
	o.Tolerance = &tolerance
	return o
}

// CheckDrift compares every statement ending balance with the book balance at
// the statement date. Provider failures and panics become ERROR results and
// never stop the batch. Cancelling ctx stops scheduling, results already computed are kept.
func CheckDrift(ctx context.Context, records []models.ReconciliationRecord, provider BookBalanceProvider, opts DriftOptions) models.DriftReport {
	opts = opts.withDefaults()

	report := models.DriftReport{TotalAbsoluteDrift: decimal.Zero}
	checkable := make([]models.ReconciliationRecord, 0, len(records))
	for _, r := range records {
		if !r.IsCheckable() {
			report.Skipped++
			continue
		}
		checkable = append(checkable, r)
	}

	results := make([]*models.DriftResult, len(checkable))

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for i, rec := range checkable {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			res, ok := checkRecord(ctx, rec, provider, *opts.Tolerance)
			if ok {
				results[i] = &res
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		if res == nil {
			continue
		}
		report.Results = append(report.Results, *res)
		switch res.Status {
		case models.DriftStatusError:
			report.Errored++
		case models.DriftStatusFlagged:
			report.Flagged++
			report.Checked++
			report.TotalAbsoluteDrift = report.TotalAbsoluteDrift.Add(res.Drift.Abs())
		default:
			report.Checked++
			report.TotalAbsoluteDrift = report.TotalAbsoluteDrift.Add(res.Drift.Abs())
		}
	}
	report.Cancelled = ctx.Err() != nil

	SortDriftResults(report.Results)
	return report
}

// checkRecord returns false when the call was abandoned because ctx ended.
func checkRecord(ctx context.Context, rec models.ReconciliationRecord, provider BookBalanceProvider, tolerance decimal.Decimal) (models.DriftResult, bool) {
	res := models.DriftResult{
		RecordID:        rec.ID,
		BankGLAccountID: rec.BankGLAccountID,
		StatementDate:   *rec.StatementEndingDate,
		EndingBalance:   *rec.EndingBalance,
		IsFinished:      rec.IsFinished,
	}

	local, err := callProvider(ctx, provider, rec.BankGLAccountID, *rec.StatementEndingDate)
	if err != nil && ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return res, false
	}
	if err == nil && local == nil {
		err = common.ErrBookBalanceNotFound
	}
	if err != nil {
		res.Status = models.DriftStatusError
		res.Error = fmt.Errorf("%w: %v", common.ErrProviderFailure, err).Error()
		return res, true
	}

	res.LocalBalance = *local
	res.Drift = res.EndingBalance.Sub(*local)
	res.Status = models.DriftStatusOK
	if res.Drift.Abs().GreaterThan(tolerance) {
		res.Status = models.DriftStatusFlagged
	}
	return res, true
}

// callProvider turns a provider panic into an error so one bad account cannot
// take the batch down with it.
func callProvider(ctx context.Context, provider BookBalanceProvider, bankGLAccountID string, asOf time.Time) (local *decimal.Decimal, err error) {
	defer func() {
		if p := recover(); p != nil {
			local, err = nil, fmt.Errorf("book balance provider panicked: %v", p)
		}
	}()
	return provider.BookBalance(ctx, bankGLAccountID, asOf)
}

// SortDriftResults orders newest statements first, ties by record id.
func SortDriftResults(results []models.DriftResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if !a.StatementDate.Equal(b.StatementDate) {
			return a.StatementDate.After(b.StatementDate)
		}
		return a.RecordID < b.RecordID
	})
}
