package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func statement(id, bankID, date, ending string) models.ReconciliationRecord {
	d := day(date)
	e := dec(ending)
	return models.ReconciliationRecord{ID: id, BankGLAccountID: bankID, StatementEndingDate: &d, EndingBalance: &e}
}

// mockBankLedger serves a bank account holding 1000 and nothing else.
func mockBankLedger(m serviceMocks) {
	b := &lineBuilder{}
	rows := rowsOf(
		b.line("t-dep", models.TransactionTypeDeposit, "2024-01-10", glBank, models.PostingTypeDebit, "1000"),
		b.line("t-dep", models.TransactionTypeDeposit, "2024-01-10", glUndeposited, models.PostingTypeCredit, "1000"),
	)
	m.ledgerRepo.EXPECT().ListRows(gomock.Any(), gomock.Any()).Return(rows, nil).AnyTimes()
	m.glRepo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ids []string) ([]models.GLAccount, error) {
			if len(ids) == 1 && ids[0] == glBank.ID {
				return []models.GLAccount{glBank}, nil
			}
			return []models.GLAccount{}, nil
		}).AnyTimes()
}

func TestReconService_CheckDrift(t *testing.T) {
	undated := models.ReconciliationRecord{ID: "r-undated", BankGLAccountID: glBank.ID}
	records := []models.ReconciliationRecord{
		statement("r-drift", glBank.ID, "2024-01-31", "1000.50"),
		statement("r-ok", glBank.ID, "2024-01-31", "1000"),
		statement("r-unknown", "ga-missing", "2024-01-31", "10"),
		undated,
	}

	tests := []struct {
		name        string
		flags       map[string]bool
		doMock      func(m serviceMocks)
		wantFlagged int
	}{
		{
			name: "publishes flagged statements",
			doMock: func(m serviceMocks) {
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg any, _ ...any) error {
						alert, ok := msg.(models.DriftAlert)
						require.True(t, ok)
						assert.Equal(t, "r-drift", alert.RecordID)
						assert.NotEmpty(t, alert.Identifier)
						return nil
					}).Times(1)
			},
			wantFlagged: 1,
		},
		{
			name:        "alerts switched off",
			flags:       map[string]bool{"publish_drift_alert": false},
			doMock:      func(serviceMocks) {},
			wantFlagged: 1,
		},
		{
			name: "publish failure does not fail the check",
			doMock: func(m serviceMocks) {
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantFlagged: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServices(t, config.Config{Recon: config.ReconConfig{Concurrency: 2}}, tt.flags)
			m.reconRepo.EXPECT().List(gomock.Any(), []string{glBank.ID, "ga-missing"}).Return(records, nil)
			mockBankLedger(m)
			tt.doMock(m)

			got, err := srv.Recon.CheckDrift(context.Background(), models.DriftCheckRequest{
				BankGLAccountIDs: []string{glBank.ID, "ga-missing"},
			})
			require.NoError(t, err)
			assert.Equal(t, 2, got.Checked)
			assert.Equal(t, tt.wantFlagged, got.Flagged)
			assert.Equal(t, 1, got.Errored)
			assert.Equal(t, 1, got.Skipped)
			assert.True(t, decimal.RequireFromString("0.50").Equal(got.TotalAbsoluteDrift))

			byID := map[string]models.DriftResult{}
			for _, r := range got.Results {
				byID[r.RecordID] = r
			}
			assert.Equal(t, models.DriftStatusFlagged, byID["r-drift"].Status)
			assert.Equal(t, models.DriftStatusOK, byID["r-ok"].Status)
			assert.Equal(t, models.DriftStatusError, byID["r-unknown"].Status)
		})
	}

	t.Run("repository failure", func(t *testing.T) {
		srv, m := newTestServices(t, config.Config{}, nil)
		m.reconRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))

		got, err := srv.Recon.CheckDrift(context.Background(), models.DriftCheckRequest{})
		assert.Nil(t, got)
		assert.ErrorIs(t, err, common.ErrInternalServerError)
	})
}

func TestReconService_RunScheduledCheck(t *testing.T) {
	t.Run("another run holds the lock", func(t *testing.T) {
		srv, m := newTestServices(t, config.Config{}, nil)
		m.cacheRepo.EXPECT().SetIfNotExists(gomock.Any(), "lock:recon_drift_check", gomock.Any(), 15*time.Minute).Return(false, nil)
		m.cacheRepo.EXPECT().Get(gomock.Any(), "lock:recon_drift_check").Return("run-1", nil)

		got, err := srv.Recon.RunScheduledCheck(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, common.ErrJobLocked)
		assert.ErrorContains(t, err, "run-1")
	})

	t.Run("lock backend unavailable", func(t *testing.T) {
		srv, m := newTestServices(t, config.Config{}, nil)
		m.cacheRepo.EXPECT().SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("dial tcp"))

		_, err := srv.Recon.RunScheduledCheck(context.Background())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrJobLocked)
	})

	t.Run("runs every statement and releases its own lock", func(t *testing.T) {
		srv, m := newTestServices(t, config.Config{}, nil)
		var runID string
		gomock.InOrder(
			m.cacheRepo.EXPECT().SetIfNotExists(gomock.Any(), "lock:recon_drift_check", gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value any, _ time.Duration) (bool, error) {
					runID = value.(string)
					return true, nil
				}),
			m.reconRepo.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]models.ReconciliationRecord{
				statement("r-ok", glBank.ID, "2024-01-31", "1000"),
			}, nil),
			m.cacheRepo.EXPECT().DelIfValue(gomock.Any(), "lock:recon_drift_check", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value string) (bool, error) {
					assert.Equal(t, runID, value)
					return true, nil
				}),
		)
		mockBankLedger(m)

		got, err := srv.Recon.RunScheduledCheck(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, runID)
		assert.Equal(t, 1, got.Checked)
		assert.Zero(t, got.Flagged)
	})

	t.Run("lock taken over after expiry is left alone", func(t *testing.T) {
		srv, m := newTestServices(t, config.Config{}, nil)
		gomock.InOrder(
			m.cacheRepo.EXPECT().SetIfNotExists(gomock.Any(), "lock:recon_drift_check", gomock.Any(), gomock.Any()).Return(true, nil),
			m.reconRepo.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, nil),
			m.cacheRepo.EXPECT().DelIfValue(gomock.Any(), "lock:recon_drift_check", gomock.Any()).Return(false, nil),
		)

		got, err := srv.Recon.RunScheduledCheck(context.Background())
		require.NoError(t, err)
		assert.Zero(t, got.Checked)
	})
}
