package monthly_log

import (
	nethttp "net/http"

	"github.com/propledger/go-fp-rollup/internal/common/http"
	"github.com/propledger/go-fp-rollup/internal/common/validation"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/services"

	"github.com/labstack/echo/v4"
)

type monthlyLogHandler struct {
	summarySvc services.SummaryService
}

// New monthly log handler will initialize the monthly-logs/ resources endpoint
func New(app *echo.Group, summarySvc services.SummaryService) {
	handler := monthlyLogHandler{
		summarySvc: summarySvc,
	}
	api := app.Group("/monthly-logs")
	api.GET("/:monthlyLogId/summary", handler.getSummary)
}

// getSummary API get monthly summary
// @Summary Get the financial summary of a monthly log
// @Description Totals per transaction type with the escrow override applied
// @Tags MonthlyLogs
// @Accept  json
// @Produce  json
// @Param monthlyLogId path string true "monthly log id"
// @Param unitId query string false "unit used to pick the display line"
// @Success 200 {object} models.MonthlySummaryResponse
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/monthly-logs/{monthlyLogId}/summary [get]
func (h *monthlyLogHandler) getSummary(c echo.Context) error {
	req := new(models.GetMonthlySummaryRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.summarySvc.GetMonthlySummary(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToModelResponse())
}
