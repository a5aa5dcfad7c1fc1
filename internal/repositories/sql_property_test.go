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
)

func TestPropertyRepository_GetReserve(t *testing.T) {
	tests := []struct {
		name      string
		doMock    func(mock sqlmock.Sqlmock)
		want      decimal.Decimal
		wantErrIs error
	}{
		{
			name: "success",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryPropertyGetReserve)).
					WithArgs("p-1").
					WillReturnRows(sqlmock.NewRows([]string{"reserve"}).AddRow("500.00"))
			},
			want: decimal.NewFromInt(500),
		},
		{
			name: "unknown property",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryPropertyGetReserve)).
					WithArgs("p-1").
					WillReturnError(sql.ErrNoRows)
			},
			want:      decimal.Zero,
			wantErrIs: common.ErrDataNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock, _ := newTestRepository(t)
			tt.doMock(mock)

			got, err := r.GetPropertyRepository().GetReserve(context.Background(), "p-1")
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPropertyRepository_GetFinancials(t *testing.T) {
	asOf := mustDate(t, "2024-03-31")

	t.Run("null columns stay nil", func(t *testing.T) {
		r, mock, _ := newTestRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryPropertyGetFinancials)).
			WithArgs("p-1", asOf).
			WillReturnRows(sqlmock.NewRows([]string{"cash_balance", "security_deposits", "reserve", "available_balance"}).
				AddRow("2500.00", "-2500.00", nil, nil))

		got, err := r.GetPropertyRepository().GetFinancials(context.Background(), "p-1", asOf)
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.True(t, decimal.NewFromInt(2500).Equal(*got.CashBalance))
			assert.True(t, decimal.NewFromInt(-2500).Equal(*got.SecurityDeposits))
			assert.Nil(t, got.Reserve)
			assert.Nil(t, got.AvailableBalance)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		r, mock, _ := newTestRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryPropertyGetFinancials)).
			WithArgs("p-1", asOf).
			WillReturnError(sql.ErrNoRows)

		got, err := r.GetPropertyRepository().GetFinancials(context.Background(), "p-1", asOf)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})
}
