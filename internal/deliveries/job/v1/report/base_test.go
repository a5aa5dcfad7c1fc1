package report

import (
	"bytes"
	"os"
	"testing"

	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/services/mock"

	"go.uber.org/mock/gomock"
)

type testReportHelper struct {
	mockFinanceService *mock.MockFinanceService
	mockReconService   *mock.MockReconService
	out                *bytes.Buffer
	handler            *reportHandler
}

func reportTestHelper(t *testing.T) testReportHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockFinanceService := mock.NewMockFinanceService(mockCtrl)
	mockReconService := mock.NewMockReconService(mockCtrl)
	out := &bytes.Buffer{}

	return testReportHelper{
		mockFinanceService: mockFinanceService,
		mockReconService:   mockReconService,
		out:                out,
		handler: &reportHandler{
			financeSrv: mockFinanceService,
			reconSrv:   mockReconService,
			currency:   "USD",
			out:        out,
		},
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
