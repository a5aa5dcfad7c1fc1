package services

import (
	"context"

	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"
	"github.com/propledger/go-fp-rollup/internal/repositories"
)

//go:generate mockgen -source=summary_service.go -destination=mock/mock_summary_service.go -package=mock
type SummaryService interface {
	GetMonthlySummary(ctx context.Context, req models.GetMonthlySummaryRequest) (*models.MonthlySummary, error)
}

type summary service

var _ SummaryService = (*summary)(nil)

func (s *summary) GetMonthlySummary(ctx context.Context, req models.GetMonthlySummaryRequest) (output *models.MonthlySummary, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var (
		log     *models.MonthlyLog
		adapted models.AdaptResult
	)
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var err error
		log, err = r.GetMonthlyLogRepository().GetByID(ctx, req.MonthlyLogID)
		if err != nil {
			return err
		}

		adapted, _, err = loadLines(ctx, r, models.LedgerQuery{MonthlyLogID: log.ID}, nil)
		return err
	})
	if err != nil {
		return nil, checkDatabaseError(err, models.ErrKeyMonthlyLogNotFound)
	}

	unitID := req.UnitID
	if unitID == "" {
		unitID = log.UnitID
	}

	fs, trx := BuildMonthlySummary(adapted.Lines, *log, unitID, s.srv.classifier)

	return &models.MonthlySummary{
		MonthlyLog:   *log,
		Summary:      fs,
		Transactions: trx,
	}, nil
}
