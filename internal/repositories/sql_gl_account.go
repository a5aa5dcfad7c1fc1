package repositories

import (
	"context"

	"github.com/propledger/go-fp-rollup/internal/common/cache"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"
)

const glChartCacheKey = "gl_accounts:all"

//go:generate mockgen -source=sql_gl_account.go -destination=mock/mock_sql_gl_account.go -package=mock
type GLAccountRepository interface {
	// List returns the accounts with the given ids, or the whole chart when ids is empty.
	// The whole chart is cached in process.
	List(ctx context.Context, ids []string) ([]models.GLAccount, error)
}

type glAccountRepository sqlRepo

var _ GLAccountRepository = (*glAccountRepository)(nil)

func (gr *glAccountRepository) List(ctx context.Context, ids []string) (accounts []models.GLAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if len(ids) > 0 {
		return gr.query(ctx, ids)
	}

	return gr.r.glChart.GetOrSet(ctx, cache.GetOrSetOpts[[]models.GLAccount]{
		Key: glChartCacheKey,
		TTL: gr.r.config.Rollup.GLChartCacheTTL,
		Callback: func() ([]models.GLAccount, error) {
			return gr.query(ctx, nil)
		},
	})
}

func (gr *glAccountRepository) query(ctx context.Context, ids []string) ([]models.GLAccount, error) {
	query, args, err := buildGLAccountsQuery(ids).ToSql()
	if err != nil {
		return nil, err
	}

	res, err := gr.r.extractTxRead(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	accounts := make([]models.GLAccount, 0)
	for res.Next() {
		var (
			a      models.GLAccount
			glType string
		)
		if err = res.Scan(
			&a.ID,
			&glType,
			&a.SubType,
			&a.Name,
			&a.DefaultAccountName,
			&a.AccountNumber,
			&a.Category,
			&a.IsBankAccount,
			&a.IsSecurityDepositLiability,
			&a.ExcludeFromCashBalances,
		); err != nil {
			return nil, err
		}
		a.Type = models.ParseGLAccountType(glType)

		// misrouted accounts are kept, the classifier decides how they count
		if vErr := a.Validate(); vErr != nil {
			xlog.Warn(ctx, "[GL-ACCOUNT]", xlog.String("status", "invalid routing flags"), xlog.Err(vErr))
		}
		accounts = append(accounts, a)
	}

	return accounts, res.Err()
}
