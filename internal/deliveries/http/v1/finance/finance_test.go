package finance

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/services/mock"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testFinanceHelper struct {
	router      *echo.Echo
	mockService *mock.MockFinanceService
}

func financeTestHelper(t *testing.T) testFinanceHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockService := mock.NewMockFinanceService(mockCtrl)

	app := echo.New()
	New(app.Group("/api/v1"), mockService)

	return testFinanceHelper{router: app, mockService: mockService}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_getRollup(t *testing.T) {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	scope := models.RollupScope{PropertyID: "p-1"}
	authoritative := models.Authoritative(scope, asOf, models.NewRollupValues(
		decimal.NewFromInt(3000), decimal.NewFromInt(-2500), decimal.Zero))

	tests := []struct {
		name      string
		urlCalled string
		doMock    func(h testFinanceHelper)
		wantCode  int
		wantRes   string
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/properties/p-1/finance?asOf=2024-03-31",
			doMock: func(h testFinanceHelper) {
				h.mockService.EXPECT().GetRollup(gomock.Any(), models.RollupRequest{Scope: scope, AsOf: asOf}).Return(&authoritative, nil)
			},
			wantCode: http.StatusOK,
			wantRes:  `{"kind":"propertyFinance","propertyId":"p-1","asOf":"2024-03-31","source":"authoritative","cashBalance":3000.00,"securityDeposits":-2500.00,"prepayments":0.00,"reserve":0.00,"availableBalance":500.00}`,
		},
		{
			name:      "error validating as of date",
			urlCalled: "/api/v1/properties/p-1/finance?asOf=31-03-2024",
			wantCode:  http.StatusUnprocessableEntity,
			wantRes:   `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_FORMAT_DATE","field":"asOf","message":"asOf format must be YYYY-MM-DD"}]}`,
		},
		{
			name:      "error property not found",
			urlCalled: "/api/v1/properties/p-1/finance?asOf=2024-03-31",
			doMock: func(h testFinanceHelper) {
				h.mockService.EXPECT().GetRollup(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: %w", common.ErrDataNotFound, models.GetErrMap(models.ErrKeyDataNotFound)))
			},
			wantCode: http.StatusNotFound,
			wantRes:  `{"status":"error","code":"DATA_NOT_FOUND","message":"data not found"}`,
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/properties/p-1/finance?asOf=2024-03-31&unitId=u-1",
			doMock: func(h testFinanceHelper) {
				h.mockService.EXPECT().GetRollup(gomock.Any(), models.RollupRequest{
					Scope: models.RollupScope{PropertyID: "p-1", UnitID: "u-1"},
					AsOf:  asOf,
				}).Return(nil, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
			wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := financeTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			h.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.JSONEq(t, tt.wantRes, strings.TrimSpace(string(body)))
		})
	}
}

func Test_Handler_compare(t *testing.T) {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	scope := models.RollupScope{PropertyID: "p-1"}
	values := models.NewRollupValues(decimal.NewFromInt(100), decimal.Zero, decimal.Zero)
	derived := models.Derived(scope, asOf, values, models.RollupDiagnostics{BankLineCount: 2}, nil)

	tests := []struct {
		name     string
		doMock   func(h testFinanceHelper)
		wantCode int
		wantRes  string
	}{
		{
			name: "success without authoritative answer",
			doMock: func(h testFinanceHelper) {
				h.mockService.EXPECT().Compare(gomock.Any(), models.RollupRequest{Scope: scope, AsOf: asOf}).
					Return(&models.RollupComparison{Derived: derived, Divergence: decimal.Zero}, nil)
			},
			wantCode: http.StatusOK,
			wantRes: `{"kind":"propertyFinanceComparison","authoritative":null,"agrees":false,"divergence":0.00,
				"derived":{"kind":"propertyFinance","propertyId":"p-1","asOf":"2024-03-31","source":"derived",
				"cashBalance":100.00,"securityDeposits":0.00,"prepayments":0.00,"reserve":0.00,"availableBalance":100.00,
				"diagnostics":{"bankLineCount":2,"cashProxyLineCount":0,"excludedDepositChargeLines":0,"excludedAfterAsOf":0,"missingLinkage":0}}}`,
		},
		{
			name: "error missing scope",
			doMock: func(h testFinanceHelper) {
				h.mockService.EXPECT().Compare(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: %w", common.ErrMissingScope, models.GetErrMap(models.ErrKeyPropertyIdRequired)))
			},
			wantCode: http.StatusBadRequest,
			wantRes:  `{"status":"error","code":"MISSING_SCOPE","message":"propertyId is required"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := financeTestHelper(t)
			tt.doMock(h)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/p-1/finance/compare?asOf=2024-03-31", nil)
			rec := httptest.NewRecorder()
			h.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantRes, rec.Body.String())
		})
	}
}
