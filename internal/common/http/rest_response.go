package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string `json:"status" example:"error"`
		Code    any    `json:"code"`
		Message string `json:"message" example:"error"`
	}

	RestCollectionResponseModel[T any] struct {
		Kind     string `json:"kind" example:"collection"`
		Contents []T    `json:"contents"`
		Total    int    `json:"total" example:"2"`
	}

	RestErrorValidationResponseModel struct {
		Status  string `json:"status" example:"error"`
		Message string `json:"message" example:"validation error"`
		Errors  any    `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in any) error {
	return c.JSON(code, in)
}

// ResponseConverter is implemented by every domain value exposed over HTTP.
type ResponseConverter[T any] interface {
	ToModelResponse() T
}

func RestSuccessResponseCollection[T any, S ~[]E, E ResponseConverter[T]](c echo.Context, data S) error {
	contents := make([]T, 0, len(data))
	for _, datum := range data {
		contents = append(contents, datum.ToModelResponse())
	}

	return c.JSON(http.StatusOK, RestCollectionResponseModel[T]{
		Kind:     "collection",
		Contents: contents,
		Total:    len(contents),
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = fmt.Sprint(echoErr.Message)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, err error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		res.Errors = merr.Errors
	} else if err != nil {
		res.Errors = []string{err.Error()}
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// StatusCodeFromError maps service errors onto HTTP status codes.
func StatusCodeFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrDataNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrInvalidBasis),
		errors.Is(err, common.ErrInvalidFormatDate),
		errors.Is(err, common.ErrMissingScope):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrProviderFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
