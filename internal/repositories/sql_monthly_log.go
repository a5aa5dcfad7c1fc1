package repositories

import (
	"context"

	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"
)

//go:generate mockgen -source=sql_monthly_log.go -destination=mock/mock_sql_monthly_log.go -package=mock
type MonthlyLogRepository interface {
	GetByID(ctx context.Context, id string) (*models.MonthlyLog, error)
}

type monthlyLogRepository sqlRepo

var _ MonthlyLogRepository = (*monthlyLogRepository)(nil)

func (mr *monthlyLogRepository) GetByID(ctx context.Context, id string) (log *models.MonthlyLog, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var ml models.MonthlyLog
	err = mr.r.extractTxRead(ctx).QueryRowContext(ctx, queryMonthlyLogGetByID, id).Scan(
		&ml.ID,
		&ml.PropertyID,
		&ml.UnitID,
		&ml.PeriodStart,
		&ml.PeriodEnd,
		&ml.PreviousBalance,
	)
	if err != nil {
		return nil, notFoundOr(err, "monthly log "+id)
	}

	return &ml, nil
}
