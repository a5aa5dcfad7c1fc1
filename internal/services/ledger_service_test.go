package services

import (
	"context"
	"errors"
	"testing"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLedgerService_GetGeneralLedger(t *testing.T) {
	b := &lineBuilder{}
	priorRows := rowsOf(
		b.line("t-0", models.TransactionTypeDeposit, "2024-02-15", glBank, models.PostingTypeDebit, "1000"),
		b.line("t-0", models.TransactionTypeDeposit, "2024-02-15", glRentIncome, models.PostingTypeCredit, "1000"),
	)
	periodRows := rowsOf(
		b.line("t-1", models.TransactionTypeBill, "2024-03-02", glRepairs, models.PostingTypeDebit, "150"),
		b.line("t-1", models.TransactionTypeBill, "2024-03-02", glBank, models.PostingTypeCredit, "150"),
	)

	type args struct {
		req models.GeneralLedgerRequest
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(m serviceMocks)
		wantErr error
	}{
		{
			name:    "missing scope",
			args:    args{req: models.GeneralLedgerRequest{From: "2024-03-01", To: "2024-03-31"}},
			wantErr: common.ErrMissingScope,
		},
		{
			name:    "malformed from",
			args:    args{req: models.GeneralLedgerRequest{PropertyID: "p-1", From: "03/01/2024", To: "2024-03-31"}},
			wantErr: common.ErrInvalidFormatDate,
		},
		{
			name:    "malformed to",
			args:    args{req: models.GeneralLedgerRequest{PropertyID: "p-1", From: "2024-03-01", To: "tomorrow"}},
			wantErr: common.ErrInvalidFormatDate,
		},
		{
			name:    "from after to",
			args:    args{req: models.GeneralLedgerRequest{PropertyID: "p-1", From: "2024-04-01", To: "2024-03-31"}},
			wantErr: common.ErrValidation,
		},
		{
			name:    "unknown basis",
			args:    args{req: models.GeneralLedgerRequest{PropertyID: "p-1", From: "2024-03-01", To: "2024-03-31", Basis: "modified"}},
			wantErr: common.ErrInvalidBasis,
		},
		{
			name: "ledger read failure",
			args: args{req: models.GeneralLedgerRequest{PropertyID: "p-1", From: "2024-03-01", To: "2024-03-31"}},
			doMock: func(m serviceMocks) {
				m.ledgerRepo.EXPECT().ListRows(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))
			},
			wantErr: common.ErrInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServices(t, config.Config{}, nil)
			if tt.doMock != nil {
				tt.doMock(m)
			}

			got, err := srv.Ledger.GetGeneralLedger(context.Background(), tt.args.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}

	t.Run("groups the period over the opening balance", func(t *testing.T) {
		srv, m := newTestServices(t, config.Config{}, nil)
		m.ledgerRepo.EXPECT().ListRows(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q models.LedgerQuery) ([]models.LedgerRow, error) {
				assert.Equal(t, "p-1", q.PropertyID)
				require.NotNil(t, q.To)
				if q.From == nil {
					assert.Equal(t, day("2024-02-29"), *q.To)
					return priorRows, nil
				}
				assert.Equal(t, day("2024-03-01"), *q.From)
				return periodRows, nil
			}).Times(2)
		m.glRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(testChart, nil).Times(2)

		got, err := srv.Ledger.GetGeneralLedger(context.Background(), models.GeneralLedgerRequest{
			PropertyID: "p-1", From: "2024-03-01", To: "2024-03-31",
		})
		require.NoError(t, err)
		assert.Equal(t, models.BasisAccrual, got.Basis)
		assert.Equal(t, "2024-03-01", got.FromDate)

		byID := groupByID(got.Groups)
		require.Contains(t, byID, glBank.ID)
		assert.True(t, dec("1000").Equal(byID[glBank.ID].OpeningBalance))
		assert.True(t, dec("850").Equal(byID[glBank.ID].ClosingBalance()))
		assert.True(t, dec("150").Equal(byID[glRepairs.ID].Net))
		assert.Len(t, got.Adapted.Lines, 2)
	})
}
