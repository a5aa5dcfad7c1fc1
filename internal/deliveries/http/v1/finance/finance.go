package finance

import (
	nethttp "net/http"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/common/http"
	"github.com/propledger/go-fp-rollup/internal/common/validation"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/services"

	"github.com/labstack/echo/v4"
)

type financeHandler struct {
	financeSvc services.FinanceService
}

// New finance handler will initialize the properties/:propertyId/finance resources endpoint
func New(app *echo.Group, financeSvc services.FinanceService) {
	handler := financeHandler{
		financeSvc: financeSvc,
	}
	api := app.Group("/properties/:propertyId/finance")
	api.GET("", handler.getRollup)
	api.GET("/compare", handler.compare)
}

func (h *financeHandler) bindRollupRequest(c echo.Context) (*models.RollupRequest, error) {
	req := new(models.GetRollupRequest)
	if err := c.Bind(req); err != nil {
		return nil, http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, http.RestErrorValidationResponse(c, err)
	}

	asOf, err := common.ParseDateOrToday(req.AsOf)
	if err != nil {
		return nil, http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	return &models.RollupRequest{
		Scope: models.RollupScope{PropertyID: req.PropertyID, UnitID: req.UnitID},
		AsOf:  asOf,
	}, nil
}

// getRollup API get property finance
// @Summary Get cash, security deposits, reserve and available balance of a property
// @Description The result is tagged with its source, authoritative or derived from the ledger
// @Tags Finance
// @Accept  json
// @Produce  json
// @Param propertyId path string true "property id"
// @Param unitId query string false "narrow the rollup to a unit"
// @Param asOf query string false "as-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.RollupResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/properties/{propertyId}/finance [get]
func (h *financeHandler) getRollup(c echo.Context) error {
	req, errResp := h.bindRollupRequest(c)
	if req == nil {
		return errResp
	}

	res, err := h.financeSvc.GetRollup(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToModelResponse())
}

// compare API compare both finance paths
// @Summary Compare the authoritative and the derived finance figures of a property
// @Tags Finance
// @Accept  json
// @Produce  json
// @Param propertyId path string true "property id"
// @Param asOf query string false "as-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.RollupComparisonResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/properties/{propertyId}/finance/compare [get]
func (h *financeHandler) compare(c echo.Context) error {
	req, errResp := h.bindRollupRequest(c)
	if req == nil {
		return errResp
	}

	res, err := h.financeSvc.Compare(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToModelResponse())
}
