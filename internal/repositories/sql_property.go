package repositories

import (
	"context"
	"time"

	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=sql_property.go -destination=mock/mock_sql_property.go -package=mock
type PropertyRepository interface {
	GetReserve(ctx context.Context, propertyID string) (decimal.Decimal, error)
	// GetFinancials calls get_property_financials. Null columns stay nil, the
	// caller decides whether the answer is usable.
	GetFinancials(ctx context.Context, propertyID string, asOf time.Time) (*models.AuthoritativeBalance, error)
}

type propertyRepository sqlRepo

var _ PropertyRepository = (*propertyRepository)(nil)

func (pr *propertyRepository) GetReserve(ctx context.Context, propertyID string) (reserve decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = pr.r.extractTxRead(ctx).QueryRowContext(ctx, queryPropertyGetReserve, propertyID).Scan(&reserve)
	if err != nil {
		return decimal.Zero, notFoundOr(err, "property "+propertyID)
	}

	return reserve, nil
}

func (pr *propertyRepository) GetFinancials(ctx context.Context, propertyID string, asOf time.Time) (res *models.AuthoritativeBalance, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var cash, deposits, reserve, available decimal.NullDecimal
	err = pr.r.extractTxRead(ctx).
		QueryRowContext(ctx, queryPropertyGetFinancials, propertyID, asOf).
		Scan(&cash, &deposits, &reserve, &available)
	if err != nil {
		return nil, notFoundOr(err, "property financials "+propertyID)
	}

	return &models.AuthoritativeBalance{
		CashBalance:      nullDecimalPtr(cash),
		SecurityDeposits: nullDecimalPtr(deposits),
		Reserve:          nullDecimalPtr(reserve),
		AvailableBalance: nullDecimalPtr(available),
	}, nil
}
