package monthly_log

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/services/mock"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_getSummary(t *testing.T) {
	balance := decimal.NewFromInt(-5)
	summary := &models.MonthlySummary{
		MonthlyLog: models.MonthlyLog{
			ID:          "ml-1",
			PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		Summary: models.FinancialSummary{
			TotalPayments: decimal.NewFromInt(5),
			EscrowAmount:  decimal.NewFromInt(-30),
			OwnerDraw:     decimal.NewFromInt(35),
			NetToOwner:    decimal.NewFromInt(40),
			Balance:       &balance,
		},
		Transactions: []models.PeriodTransaction{{
			TransactionID:   "t-1",
			TransactionType: models.TransactionTypePayment,
			SignedAmount:    decimal.NewFromInt(5),
			AccountName:     "Undeposited Funds",
		}},
	}

	tests := []struct {
		name     string
		doMock   func(m *mock.MockSummaryService)
		wantCode int
		wantRes  string
	}{
		{
			name: "success",
			doMock: func(m *mock.MockSummaryService) {
				m.EXPECT().GetMonthlySummary(gomock.Any(), models.GetMonthlySummaryRequest{MonthlyLogID: "ml-1", UnitID: "u-1"}).
					Return(summary, nil)
			},
			wantCode: http.StatusOK,
			wantRes: `{"kind":"monthlySummary","monthlyLogId":"ml-1","periodStart":"2024-03-01","periodEnd":"2024-03-31",
				"totalCharges":0.00,"totalCredits":0.00,"totalPayments":5.00,"totalBills":0.00,"escrowAmount":-30.00,
				"managementFees":0.00,"ownerDraw":35.00,"previousBalance":0.00,"netToOwner":40.00,"balance":-5.00,
				"transactions":[{"transactionId":"t-1","transactionType":"` + string(models.TransactionTypePayment) + `","amount":5.00,"accountName":"Undeposited Funds"}]}`,
		},
		{
			name: "error monthly log not found",
			doMock: func(m *mock.MockSummaryService) {
				m.EXPECT().GetMonthlySummary(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: %w", common.ErrDataNotFound, models.GetErrMap(models.ErrKeyMonthlyLogNotFound)))
			},
			wantCode: http.StatusNotFound,
			wantRes:  `{"status":"error","code":"DATA_NOT_FOUND","message":"monthly log not found"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mock.NewMockSummaryService(gomock.NewController(t))
			tt.doMock(mockService)
			app := echo.New()
			New(app.Group("/api/v1"), mockService)

			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/monthly-logs/ml-1/summary?unitId=u-1", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantRes, rec.Body.String())
		})
	}
}
