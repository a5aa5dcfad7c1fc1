package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// anyOf filters column against a text array, one bind parameter whatever the list size.
func anyOf(column string, values []string) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("%s = ANY(?)", column), pq.Array(values))
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, common.ErrDataNotFound)
	}
	return err
}
