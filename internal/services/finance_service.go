package services

import (
	"context"
	"fmt"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/common/cache"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/monitoring"
	"github.com/propledger/go-fp-rollup/internal/repositories"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const logFinanceRollup = "[FINANCE-ROLLUP]"

//go:generate mockgen -source=finance_service.go -destination=mock/mock_finance_service.go -package=mock
type FinanceService interface {
	// GetRollup answers from the authoritative balance source when it is enabled
	// and well formed, otherwise derives the figures from the ledger.
	GetRollup(ctx context.Context, req models.RollupRequest) (*models.RollupResult, error)
	// GetRollups computes many scopes in parallel. Results of the scopes that
	// succeeded are returned along with the aggregated failures.
	GetRollups(ctx context.Context, scopes []models.RollupScope, asOf time.Time, concurrency int) ([]models.RollupResult, error)
	Compare(ctx context.Context, req models.RollupRequest) (*models.RollupComparison, error)
	BookBalance(ctx context.Context, bankGLAccountID string, asOf time.Time) (*decimal.Decimal, error)
}

type finance service

var _ FinanceService = (*finance)(nil)
var _ BookBalanceProvider = (*finance)(nil)

func (s *finance) GetRollup(ctx context.Context, req models.RollupRequest) (output *models.RollupResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if req.Scope.IsEmpty() {
		return nil, validationError(common.ErrMissingScope, models.ErrKeyMissingScope)
	}

	start := time.Now()
	reserve, err := s.reserve(ctx, req.Scope)
	if err != nil {
		return nil, err
	}

	if s.authoritativeEnabled(req.Scope) {
		if values, ok := s.authoritative(ctx, req.Scope.PropertyID, req.AsOf, reserve); ok {
			res := models.Authoritative(req.Scope, req.AsOf, values)
			s.srv.metrics.GetRollupPrometheus().Record(start, res)
			return &res, nil
		}
	}

	res, err := s.derive(ctx, req.Scope, req.AsOf, reserve)
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	s.srv.metrics.GetRollupPrometheus().Record(start, res)

	return &res, nil
}

func (s *finance) GetRollups(ctx context.Context, scopes []models.RollupScope, asOf time.Time, concurrency int) (output []models.RollupResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if concurrency <= 0 {
		concurrency = s.srv.conf.Rollup.Concurrency
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]*models.RollupResult, len(scopes))
	errs := make([]error, len(scopes))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, scope := range scopes {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			res, err := s.GetRollup(ctx, models.RollupRequest{Scope: scope, AsOf: asOf})
			if err != nil {
				errs[i] = fmt.Errorf("scope %s/%s: %w", scope.PropertyID, scope.UnitID, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var merr *multierror.Error
	for i := range scopes {
		if results[i] != nil {
			output = append(output, *results[i])
		}
		if errs[i] != nil {
			merr = multierror.Append(merr, errs[i])
		}
	}
	if ctx.Err() != nil {
		merr = multierror.Append(merr, ctx.Err())
	}

	return output, merr.ErrorOrNil()
}

func (s *finance) Compare(ctx context.Context, req models.RollupRequest) (output *models.RollupComparison, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if req.Scope.PropertyID == "" {
		return nil, validationError(common.ErrMissingScope, models.ErrKeyPropertyIdRequired)
	}

	reserve, err := s.reserve(ctx, req.Scope)
	if err != nil {
		return nil, err
	}

	derived, err := s.derive(ctx, req.Scope, req.AsOf, reserve)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	output = &models.RollupComparison{Derived: derived, Divergence: decimal.Zero}
	if req.Scope.UnitID == "" {
		if values, ok := s.authoritative(ctx, req.Scope.PropertyID, req.AsOf, reserve); ok {
			auth := models.Authoritative(req.Scope, req.AsOf, values)
			tolerance := decimalFromConfig(s.srv.conf.Rollup.CompareTolerance, common.CentTolerance)
			output.Authoritative = &auth
			output.Divergence = auth.Divergence(derived)
			output.Agrees = auth.AgreesWith(derived, tolerance)
		}
	}
	s.srv.metrics.GetRollupPrometheus().RecordDivergence(*output)

	if output.Authoritative != nil && !output.Agrees {
		xlog.Warn(ctx, logFinanceRollup,
			xlog.String("status", "paths diverge"),
			xlog.String("property_id", req.Scope.PropertyID),
			xlog.String("divergence", output.Divergence.String()))
	}

	return output, nil
}

// BookBalance returns nil when the account is not a known gl account.
func (s *finance) BookBalance(ctx context.Context, bankGLAccountID string, asOf time.Time) (output *decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	q := models.LedgerQuery{GLAccountIDs: []string{bankGLAccountID}, To: &asOf}
	adapted, lookup, err := loadLines(ctx, s.srv.sqlRepo, q, []string{bankGLAccountID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrProviderFailure, err)
	}
	if _, ok := lookup.Get(bankGLAccountID); !ok {
		return nil, nil
	}

	balance := ComputeBookBalance(adapted.Lines, bankGLAccountID, asOf)
	return &balance, nil
}

func (s *finance) reserve(ctx context.Context, scope models.RollupScope) (decimal.Decimal, error) {
	if scope.PropertyID == "" {
		return decimal.Zero, nil
	}

	reserve, err := s.srv.sqlRepo.GetPropertyRepository().GetReserve(ctx, scope.PropertyID)
	if err != nil {
		return decimal.Zero, checkDatabaseError(err)
	}
	return reserve, nil
}

func (s *finance) authoritativeEnabled(scope models.RollupScope) bool {
	if scope.PropertyID == "" || scope.UnitID != "" {
		return false
	}
	return s.srv.flag.IsEnabled(s.srv.conf.FeatureFlagKeyLookup.AuthoritativeRollup)
}

func authoritativeCacheKey(propertyID string, asOf time.Time) string {
	return propertyID + ":" + asOf.Format(common.DateFormatYYYYMMDD)
}

// authoritative returns false on any provider failure or malformed answer, the
// caller then derives the figures.
func (s *finance) authoritative(ctx context.Context, propertyID string, asOf time.Time, reserve decimal.Decimal) (models.RollupValues, bool) {
	key := authoritativeCacheKey(propertyID, asOf)
	balance, err := s.srv.balanceCache.GetOrSet(ctx, cache.GetOrSetOpts[models.AuthoritativeBalance]{
		Key: key,
		TTL: s.srv.conf.Rollup.AuthoritativeCacheTTL,
		Callback: func() (models.AuthoritativeBalance, error) {
			b, err := s.srv.sqlRepo.GetPropertyRepository().GetFinancials(ctx, propertyID, asOf)
			if err != nil {
				return models.AuthoritativeBalance{}, err
			}
			return *b, nil
		},
	})
	if err == nil && !balance.IsWellFormed(reserve, common.CentTolerance) {
		err = common.ErrMalformedBalance
		if delErr := s.srv.balanceCache.Delete(ctx, key); delErr != nil {
			xlog.Warn(ctx, logFinanceRollup, xlog.String("status", "evict malformed balance"), xlog.Err(delErr))
		}
	}
	if err != nil {
		s.srv.metrics.GetRollupPrometheus().RecordProviderFailure()
		xlog.Warn(ctx, logFinanceRollup,
			xlog.String("status", "provider failure, deriving from ledger"),
			xlog.String("property_id", propertyID),
			xlog.Err(fmt.Errorf("%w: %w", common.ErrProviderFailure, err)))
		return models.RollupValues{}, false
	}

	return balance.Values(reserve), true
}

func (s *finance) derive(ctx context.Context, scope models.RollupScope, asOf time.Time, reserve decimal.Decimal) (models.RollupResult, error) {
	var res models.RollupResult
	err := s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		q := models.LedgerQuery{PropertyID: scope.PropertyID, UnitID: scope.UnitID}
		adapted, _, err := loadLines(ctx, r, q, nil)
		if err != nil {
			return err
		}

		values, diag := ComputeFinanceRollup(adapted.Lines, RollupOptions{
			AsOf:       asOf,
			Reserve:    reserve,
			Classifier: s.srv.classifier,
			CashProxy:  s.srv.cashProxy,
		})
		diag.MissingLinkage = adapted.MissingLinkage
		res = models.Derived(scope, asOf, values, diag, adapted.Warnings)
		return nil
	})
	if err != nil {
		return res, err
	}

	if len(res.Warnings) > 0 || res.Diagnostics.MissingLinkage > 0 {
		xlog.Info(ctx, logFinanceRollup,
			xlog.String("status", "data quality"),
			xlog.Int("missing_linkage", res.Diagnostics.MissingLinkage),
			xlog.Int("inconsistent_transactions", len(res.Warnings)))
	}

	return res, nil
}
