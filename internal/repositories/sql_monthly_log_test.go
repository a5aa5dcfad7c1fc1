package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/propledger/go-fp-rollup/internal/common"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyLogRepository_GetByID(t *testing.T) {
	start := mustDate(t, "2024-03-01")
	end := mustDate(t, "2024-03-31")
	columns := []string{"id", "property_id", "unit_id", "period_start", "period_end", "previous_balance"}

	tests := []struct {
		name      string
		doMock    func(mock sqlmock.Sqlmock)
		wantErrIs error
	}{
		{
			name: "success",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryMonthlyLogGetByID)).
					WithArgs("ml-1").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("ml-1", "p-1", "u-1", start, end, "120.50"))
			},
		},
		{
			name: "not found",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryMonthlyLogGetByID)).
					WithArgs("ml-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErrIs: common.ErrDataNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock, _ := newTestRepository(t)
			tt.doMock(mock)

			got, err := r.GetMonthlyLogRepository().GetByID(context.Background(), "ml-1")
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", got.UnitID)
			assert.Equal(t, end, got.PeriodEnd)
			assert.True(t, decimal.RequireFromString("120.50").Equal(got.PreviousBalance))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
