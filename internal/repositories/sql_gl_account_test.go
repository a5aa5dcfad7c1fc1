package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var glAccountTestColumns = []string{
	"id", "type", "sub_type", "name", "default_account_name", "account_number",
	"category", "is_bank", "is_sd", "exclude_cash",
}

func TestGLAccountRepository_List(t *testing.T) {
	chartQuery, _, err := buildGLAccountsQuery(nil).ToSql()
	require.NoError(t, err)
	filteredQuery, _, err := buildGLAccountsQuery([]string{"ga-1"}).ToSql()
	require.NoError(t, err)

	t.Run("whole chart is loaded once", func(t *testing.T) {
		r, mock, _ := newTestRepository(t)
		rows := sqlmock.NewRows(glAccountTestColumns).
			AddRow("ga-1", "Asset", "", "Operating Cash", "", "1000", "Bank", true, false, false).
			AddRow("ga-2", "LIABILITY", "", "Security Deposits", "", "2100", "", false, true, false)
		mock.ExpectQuery(regexp.QuoteMeta(chartQuery)).WillReturnRows(rows)

		repo := r.GetGLAccountRepository()
		first, err := repo.List(context.Background(), nil)
		require.NoError(t, err)
		second, err := repo.List(context.Background(), []string{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		require.Len(t, first, 2)
		assert.Equal(t, models.GLAccountTypeLiability, first[1].Type)
		assert.True(t, first[1].IsSecurityDepositLiability)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered list bypasses the cache", func(t *testing.T) {
		r, mock, _ := newTestRepository(t)
		for i := 0; i < 2; i++ {
			mock.ExpectQuery(regexp.QuoteMeta(filteredQuery)).WillReturnRows(
				sqlmock.NewRows(glAccountTestColumns).
					AddRow("ga-1", "asset", "", "Operating Cash", "", "1000", "Bank", true, false, false))
		}

		repo := r.GetGLAccountRepository()
		for i := 0; i < 2; i++ {
			got, err := repo.List(context.Background(), []string{"ga-1"})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Operating Cash", got[0].Name)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is not cached", func(t *testing.T) {
		r, mock, _ := newTestRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(chartQuery)).WillReturnError(errors.New("timeout"))
		mock.ExpectQuery(regexp.QuoteMeta(chartQuery)).WillReturnRows(sqlmock.NewRows(glAccountTestColumns))

		repo := r.GetGLAccountRepository()
		_, err := repo.List(context.Background(), nil)
		assert.Error(t, err)

		got, err := repo.List(context.Background(), nil)
		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
