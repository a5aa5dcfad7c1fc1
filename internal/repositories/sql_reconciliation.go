package repositories

import (
	"context"
	"database/sql"

	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=sql_reconciliation.go -destination=mock/mock_sql_reconciliation.go -package=mock
type ReconciliationRepository interface {
	// List returns the reconciliation log, restricted to the given bank accounts when any.
	List(ctx context.Context, bankGLAccountIDs []string) ([]models.ReconciliationRecord, error)
}

type reconciliationRepository sqlRepo

var _ ReconciliationRepository = (*reconciliationRepository)(nil)

func (rr *reconciliationRepository) List(ctx context.Context, bankGLAccountIDs []string) (records []models.ReconciliationRecord, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildReconciliationQuery(bankGLAccountIDs).ToSql()
	if err != nil {
		return nil, err
	}

	res, err := rr.r.extractTxRead(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	records = make([]models.ReconciliationRecord, 0)
	for res.Next() {
		var (
			rec                          models.ReconciliationRecord
			statementDate                sql.NullTime
			ending, withdrawals, deposits decimal.NullDecimal
		)
		if err = res.Scan(
			&rec.ID,
			&rec.BankGLAccountID,
			&statementDate,
			&ending,
			&rec.IsFinished,
			&withdrawals,
			&deposits,
		); err != nil {
			return nil, err
		}
		rec.StatementEndingDate = nullTimePtr(statementDate)
		rec.EndingBalance = nullDecimalPtr(ending)
		rec.TotalChecksWithdrawals = nullDecimalPtr(withdrawals)
		rec.TotalDepositsAdditions = nullDecimalPtr(deposits)
		records = append(records, rec)
	}

	return records, res.Err()
}
