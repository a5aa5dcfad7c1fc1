package repositories

import (
	"context"
	"database/sql"

	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"
)

//go:generate mockgen -source=sql_ledger.go -destination=mock/mock_sql_ledger.go -package=mock
type LedgerRepository interface {
	// ListRows returns the raw (transaction, line, gl account) join matching q,
	// oldest first. Lines without a gl account come back with an empty GLAccountID.
	ListRows(ctx context.Context, q models.LedgerQuery) ([]models.LedgerRow, error)
}

type ledgerRepository sqlRepo

var _ LedgerRepository = (*ledgerRepository)(nil)

func (lr *ledgerRepository) ListRows(ctx context.Context, q models.LedgerQuery) (rows []models.LedgerRow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildLedgerRowsQuery(q).ToSql()
	if err != nil {
		return nil, err
	}

	db := lr.r.extractTxRead(ctx)
	res, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	for res.Next() {
		row, scanErr := scanLedgerRow(res)
		if scanErr != nil {
			return nil, scanErr
		}
		rows = append(rows, row)
	}
	if err = res.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

func scanLedgerRow(res *sql.Rows) (models.LedgerRow, error) {
	var (
		row       models.LedgerRow
		glID      sql.NullString
		glType    string
		glAccount models.GLAccount
	)
	err := res.Scan(
		&row.LineID,
		&row.TransactionID,
		&row.TransactionType,
		&row.Date,
		&row.CreatedAt,
		&row.Amount,
		&row.PostingType,
		&row.PropertyID,
		&row.UnitID,
		&row.Memo,
		&row.GLAccountID,
		&glID,
		&glType,
		&glAccount.SubType,
		&glAccount.Name,
		&glAccount.DefaultAccountName,
		&glAccount.AccountNumber,
		&glAccount.Category,
		&glAccount.IsBankAccount,
		&glAccount.IsSecurityDepositLiability,
		&glAccount.ExcludeFromCashBalances,
	)
	if err != nil {
		return row, err
	}

	if glID.Valid {
		glAccount.ID = glID.String
		glAccount.Type = models.ParseGLAccountType(glType)
		row.GLAccount = &glAccount
	}

	return row, nil
}
