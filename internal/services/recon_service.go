package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/common/publisher"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

const (
	logReconDrift = "[RECON-DRIFT]"

	driftJobLockKey = "lock:recon_drift_check"
	driftJobLockTTL = 15 * time.Minute
)

//go:generate mockgen -source=recon_service.go -destination=mock/mock_recon_service.go -package=mock
type ReconService interface {
	CheckDrift(ctx context.Context, req models.DriftCheckRequest) (*models.DriftReport, error)
	// RunScheduledCheck runs CheckDrift over every statement while holding a
	// cluster wide lock, a second runner gets common.ErrJobLocked.
	RunScheduledCheck(ctx context.Context) (*models.DriftReport, error)
}

type recon service

var _ ReconService = (*recon)(nil)

func (s *recon) CheckDrift(ctx context.Context, req models.DriftCheckRequest) (output *models.DriftReport, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	start := time.Now()
	records, err := s.srv.sqlRepo.GetReconciliationRepository().List(ctx, req.BankGLAccountIDs)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	concurrency := req.Concurrency
	if concurrency <= 0 {
		concurrency = s.srv.conf.Recon.Concurrency
	}
	if concurrency <= 0 {
		concurrency = DefaultDriftConcurrency
	}

	report := CheckDrift(ctx, records, BookBalanceFunc(s.bookBalanceWithRetry), DriftOptions{
		Concurrency: concurrency,
		Tolerance:   optionalDecimalFromConfig(s.srv.conf.Recon.DriftTolerance),
	})
	s.srv.metrics.GetReconPrometheus().Record(start, report)

	xlog.Info(ctx, logReconDrift,
		xlog.Int("checked", report.Checked),
		xlog.Int("flagged", report.Flagged),
		xlog.Int("errored", report.Errored),
		xlog.Int("skipped", report.Skipped),
		xlog.Bool("cancelled", report.Cancelled),
		xlog.String("total_absolute_drift", report.TotalAbsoluteDrift.String()))

	if errs := collectDriftErrors(report); errs != nil {
		xlog.Warn(ctx, logReconDrift, xlog.String("status", "provider errors"), xlog.Err(errs))
	}

	if pubErr := s.publishAlerts(ctx, report); pubErr != nil {
		xlog.Error(ctx, logReconDrift,
			xlog.Err(fmt.Errorf("%w: %w", models.GetErrMap(models.ErrKeyFailedPublishDriftAlert), pubErr)))
	}

	return &report, nil
}

func (s *recon) RunScheduledCheck(ctx context.Context) (output *models.DriftReport, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	runID := uuid.NewString()
	acquired, err := s.srv.cacheRepo.SetIfNotExists(ctx, driftJobLockKey, runID, driftJobLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire drift job lock: %w", err)
	}
	if !acquired {
		holder, _ := s.srv.cacheRepo.Get(ctx, driftJobLockKey)
		return nil, fmt.Errorf("%w: held by run %s", common.ErrJobLocked, holder)
	}
	defer func() {
		released, relErr := s.srv.cacheRepo.DelIfValue(context.WithoutCancel(ctx), driftJobLockKey, runID)
		switch {
		case relErr != nil:
			xlog.Warn(ctx, logReconDrift, xlog.String("status", "release lock"), xlog.Err(relErr))
		case !released:
			xlog.Warn(ctx, logReconDrift, xlog.String("status", "lock expired before release"), xlog.String("run_id", runID))
		}
	}()

	xlog.Info(ctx, logReconDrift, xlog.String("status", "scheduled run started"), xlog.String("run_id", runID))
	return s.CheckDrift(ctx, models.DriftCheckRequest{})
}

// bookBalanceWithRetry retries transient provider errors. Unknown accounts and
// cancellation are final.
func (s *recon) bookBalanceWithRetry(ctx context.Context, bankGLAccountID string, asOf time.Time) (*decimal.Decimal, error) {
	var balance *decimal.Decimal
	err := s.srv.retryer.Retry(ctx, func() error {
		b, err := s.srv.Finance.BookBalance(ctx, bankGLAccountID, asOf)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return s.srv.retryer.StopRetryWithErr(err)
			}
			return err
		}
		balance = b
		return nil
	}, nil)

	return balance, err
}

func (s *recon) publishAlerts(ctx context.Context, report models.DriftReport) error {
	if report.Flagged == 0 || s.srv.driftAlertPub == nil {
		return nil
	}
	if !s.srv.flag.IsEnabled(s.srv.conf.FeatureFlagKeyLookup.PublishDriftAlert) {
		return nil
	}

	var merr *multierror.Error
	detectedAt := common.Now()
	for _, res := range report.Results {
		if !res.IsFlagged() {
			continue
		}
		alert := models.NewDriftAlert(uuid.NewString(), res, detectedAt)
		if err := s.srv.driftAlertPub.Publish(ctx, alert, publisher.WithKey(res.BankGLAccountID)); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("record %s: %w", res.RecordID, err))
		}
	}

	return merr.ErrorOrNil()
}

func collectDriftErrors(report models.DriftReport) error {
	var merr *multierror.Error
	for _, res := range report.Results {
		if res.Status == models.DriftStatusError {
			merr = multierror.Append(merr, fmt.Errorf("record %s: %s", res.RecordID, res.Error))
		}
	}
	return merr.ErrorOrNil()
}
