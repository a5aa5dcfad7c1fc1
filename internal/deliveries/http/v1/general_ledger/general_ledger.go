package general_ledger

import (
	nethttp "net/http"

	"github.com/propledger/go-fp-rollup/internal/common/http"
	"github.com/propledger/go-fp-rollup/internal/common/validation"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/services"

	"github.com/labstack/echo/v4"
)

type generalLedgerHandler struct {
	ledgerSvc services.LedgerService
}

// New general ledger handler will initialize the general-ledger/ resources endpoint
func New(app *echo.Group, ledgerSvc services.LedgerService) {
	handler := generalLedgerHandler{
		ledgerSvc: ledgerSvc,
	}
	api := app.Group("/general-ledger")
	api.GET("", handler.getGeneralLedger)
}

// getGeneralLedger API get general ledger
// @Summary Get ledger lines grouped per gl account
// @Description Lines in the period are grouped per gl account with opening balances from earlier lines
// @Tags GeneralLedger
// @Accept  json
// @Produce  json
// @Param propertyId query string false "property id, required without unitId"
// @Param unitId query string false "unit id"
// @Param from query string true "period start (YYYY-MM-DD)"
// @Param to query string true "period end (YYYY-MM-DD)"
// @Param basis query string false "cash or accrual"
// @Success 200 {object} models.GeneralLedgerResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/general-ledger [get]
func (h *generalLedgerHandler) getGeneralLedger(c echo.Context) error {
	req := new(models.GeneralLedgerRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ledgerSvc.GetGeneralLedger(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToModelResponse())
}
