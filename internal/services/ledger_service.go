package services

import (
	"context"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"
	"github.com/propledger/go-fp-rollup/internal/repositories"
)

//go:generate mockgen -source=ledger_service.go -destination=mock/mock_ledger_service.go -package=mock
type LedgerService interface {
	GetGeneralLedger(ctx context.Context, req models.GeneralLedgerRequest) (*models.GeneralLedger, error)
}

type ledger service

var _ LedgerService = (*ledger)(nil)

// GetGeneralLedger groups the period's lines per gl account. Lines before the
// period only feed the opening balances. Both reads share one snapshot.
func (s *ledger) GetGeneralLedger(ctx context.Context, req models.GeneralLedgerRequest) (output *models.GeneralLedger, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if req.PropertyID == "" && req.UnitID == "" {
		return nil, validationError(common.ErrMissingScope, models.ErrKeyMissingScope)
	}

	from, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.From)
	if err != nil {
		return nil, validationError(common.ErrInvalidFormatDate, models.ErrKeyFromDate)
	}
	to, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.To)
	if err != nil {
		return nil, validationError(common.ErrInvalidFormatDate, models.ErrKeyToDate)
	}
	if from.After(to) {
		return nil, validationError(common.ErrValidation, models.ErrKeyStartDateIsAfterEndDate)
	}

	defaultBasis, _ := models.ParseBasis(s.srv.conf.Rollup.DefaultBasis, models.BasisAccrual)
	basis, ok := models.ParseBasis(req.Basis, defaultBasis)
	if !ok {
		return nil, validationError(common.ErrInvalidBasis, models.ErrKeyInvalidBasis)
	}

	var period, prior models.AdaptResult
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var err error
		before := dayBefore(from)
		prior, _, err = loadLines(ctx, r, models.LedgerQuery{
			PropertyID: req.PropertyID,
			UnitID:     req.UnitID,
			To:         &before,
		}, nil)
		if err != nil {
			return err
		}

		period, _, err = loadLines(ctx, r, models.LedgerQuery{
			PropertyID: req.PropertyID,
			UnitID:     req.UnitID,
			From:       &from,
			To:         &to,
		}, nil)
		return err
	})
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	groups := GroupLedger(period.Lines, GroupOptions{
		Basis:      basis,
		Classifier: s.srv.classifier,
		CashProxy:  s.srv.cashProxy,
		PriorLines: prior.Lines,
	})

	return &models.GeneralLedger{
		Basis:    basis,
		Groups:   groups,
		Adapted:  period,
		FromDate: req.From,
		ToDate:   req.To,
	}, nil
}
