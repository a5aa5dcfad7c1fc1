package reconciliation

import (
	nethttp "net/http"

	"github.com/propledger/go-fp-rollup/internal/common/http"
	"github.com/propledger/go-fp-rollup/internal/common/validation"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/services"

	"github.com/labstack/echo/v4"
)

type reconciliationHandler struct {
	reconSvc services.ReconService
}

// New reconciliation handler will initialize the reconciliations/ resources endpoint
func New(app *echo.Group, reconSvc services.ReconService) {
	handler := reconciliationHandler{
		reconSvc: reconSvc,
	}
	api := app.Group("/reconciliations")
	api.POST("/drift", handler.checkDrift)
}

// checkDrift API check reconciliation drift
// @Summary Compare bank statement ending balances against the ledger
// @Description Statements without a date or ending balance are skipped. Flagged statements are published as alerts.
// @Tags Reconciliations
// @Accept  json
// @Produce  json
// @Param body body models.DriftCheckRequest false "body"
// @Success 200 {object} models.DriftReportResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/reconciliations/drift [post]
func (h *reconciliationHandler) checkDrift(c echo.Context) error {
	req := new(models.DriftCheckRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.reconSvc.CheckDrift(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToModelResponse())
}
