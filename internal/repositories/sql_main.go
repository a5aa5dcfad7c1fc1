package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/propledger/go-fp-rollup/internal/common/cache"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/models"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbRead *sql.DB
	config config.Config
	common sqlRepo

	lr  *ledgerRepository
	gar *glAccountRepository
	pr  *propertyRepository
	rr  *reconciliationRepository
	mlr *monthlyLogRepository

	glChart cache.Client[[]models.GLAccount]
}

func NewSQLRepository(dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbRead: dbRead,
		config: cfg,
	}
	rtx.common.r = rtx
	rtx.lr = (*ledgerRepository)(&rtx.common)
	rtx.gar = (*glAccountRepository)(&rtx.common)
	rtx.pr = (*propertyRepository)(&rtx.common)
	rtx.rr = (*reconciliationRepository)(&rtx.common)
	rtx.mlr = (*monthlyLogRepository)(&rtx.common)

	rtx.glChart = cache.NewInMemoryClient[[]models.GLAccount]()

	return rtx
}

//go:generate mockgen -source=sql_main.go -destination=mock/mock_sql_main.go -package=mock
type SQLRepository interface {
	// Atomic runs steps inside one read-only repeatable-read transaction so every
	// read sees the same ledger snapshot.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetLedgerRepository() LedgerRepository
	GetGLAccountRepository() GLAccountRepository
	GetPropertyRepository() PropertyRepository
	GetReconciliationRepository() ReconciliationRepository
	GetMonthlyLogRepository() MonthlyLogRepository
}

var _ SQLRepository = (*Repository)(nil)

var snapshotTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	if _, nested := ctx.Value(txKey{}).(sqlTx); nested {
		return steps(ctx, r)
	}

	tx, err := r.dbRead.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return err
	}

	xlog.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil && errors.Is(err, sql.ErrTxDone) {
				xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
				err = nil
			}
			xlog.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()

	err = steps(injectTx(ctx, tx), r)
	return
}

func (r *Repository) GetLedgerRepository() LedgerRepository {
	return r.lr
}

func (r *Repository) GetGLAccountRepository() GLAccountRepository {
	return r.gar
}

func (r *Repository) GetPropertyRepository() PropertyRepository {
	return r.pr
}

func (r *Repository) GetReconciliationRepository() ReconciliationRepository {
	return r.rr
}

func (r *Repository) GetMonthlyLogRepository() MonthlyLogRepository {
	return r.mlr
}
