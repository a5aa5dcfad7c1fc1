package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/repositories"

	"github.com/shopspring/decimal"
)

// checkDatabaseError keeps the sentinel for status mapping and attaches the
// mapped error detail for the response body.
func checkDatabaseError(err error, key ...string) error {
	if errors.Is(err, common.ErrDataNotFound) {
		k := models.ErrKeyDataNotFound
		if len(key) > 0 {
			k = key[0]
		}
		return fmt.Errorf("%w: %w", common.ErrDataNotFound, models.GetErrMap(k))
	}

	return fmt.Errorf("%w: %w", common.ErrInternalServerError, models.GetErrMap(models.ErrKeyDatabaseError, err.Error()))
}

func validationError(sentinel error, key string) error {
	return fmt.Errorf("%w: %w", sentinel, models.GetErrMap(key))
}

func decimalFromConfig(v float64, def decimal.Decimal) decimal.Decimal {
	if v <= 0 {
		return def
	}
	return decimal.NewFromFloat(v)
}

// optionalDecimalFromConfig keeps an unset value nil so callers can tell it
// apart from an explicit zero.
func optionalDecimalFromConfig(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	return common.DecimalPtr(decimal.NewFromFloat(*v))
}

// loadLines reads one ledger snapshot and adapts it against the gl chart.
func loadLines(ctx context.Context, repo repositories.SQLRepository, q models.LedgerQuery, glIDs []string) (models.AdaptResult, models.GLLookup, error) {
	rows, err := repo.GetLedgerRepository().ListRows(ctx, q)
	if err != nil {
		return models.AdaptResult{}, models.GLLookup{}, err
	}

	accounts, err := repo.GetGLAccountRepository().List(ctx, glIDs)
	if err != nil {
		return models.AdaptResult{}, models.GLLookup{}, err
	}
	lookup := models.NewGLLookup(accounts)

	return AdaptLedgerRows(rows, lookup), lookup, nil
}

func dayBefore(t time.Time) time.Time {
	return common.StartOfDay(t).AddDate(0, 0, -1)
}
