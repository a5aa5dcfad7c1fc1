package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciliationRepository_List(t *testing.T) {
	ids := []string{"bank-1"}
	query, _, err := buildReconciliationQuery(ids).ToSql()
	require.NoError(t, err)

	columns := []string{"id", "bank_gl_account_id", "statement_ending_date", "ending_balance",
		"is_finished", "total_checks_withdrawals", "total_deposits_additions"}
	statementDate := mustDate(t, "2024-02-29")

	t.Run("nullable statement figures", func(t *testing.T) {
		r, mock, _ := newTestRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(
			sqlmock.NewRows(columns).
				AddRow("r-1", "bank-1", statementDate, "1000.01", true, "10.00", nil).
				AddRow("r-2", "bank-1", nil, nil, false, nil, nil))

		got, err := r.GetReconciliationRepository().List(context.Background(), ids)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.True(t, got[0].IsCheckable())
		assert.Equal(t, statementDate, *got[0].StatementEndingDate)
		assert.True(t, decimal.RequireFromString("1000.01").Equal(*got[0].EndingBalance))
		assert.Nil(t, got[0].TotalDepositsAdditions)
		assert.False(t, got[1].IsCheckable())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		r, mock, _ := newTestRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("timeout"))

		_, err := r.GetReconciliationRepository().List(context.Background(), ids)
		assert.Error(t, err)
	})

	t.Run("no filter lists everything", func(t *testing.T) {
		q, args, err := buildReconciliationQuery(nil).ToSql()
		require.NoError(t, err)
		assert.Empty(t, args)
		assert.NotContains(t, q, "WHERE")
	})
}
