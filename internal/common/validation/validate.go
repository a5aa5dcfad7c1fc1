package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerDate(v)
	return v
}

// ValidateStruct returns a *multierror.Error of ErrorValidateResponse, one per failing field.
// Messages are looked up in models.MapErrors by "<namespace>_<tag>" first and "<field>_<tag>" second.
func ValidateStruct(toValidate any) error {
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var errs *multierror.Error
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			errs = multierror.Append(errs, toErrorResponse(valErr))
		}
	}

	return errs.ErrorOrNil()
}

func toErrorResponse(valErr validator.FieldError) ErrorValidateResponse {
	keys := []string{
		fmt.Sprintf("%s_%s", valErr.Namespace(), valErr.Tag()),
		fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag()),
	}
	for _, key := range keys {
		if data, found := models.MapErrors[key]; found {
			return ErrorValidateResponse{
				Code:    data.Code,
				Field:   valErr.Field(),
				Message: data.ErrorMessage.Error(),
			}
		}
	}

	return ErrorValidateResponse{
		Code:    "UNKNOWN",
		Field:   valErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
	}
}

// date accepts calendar dates in YYYY-MM-DD form, empty values are left to required/omitempty.
func registerDate(v *validator.Validate) {
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		if input == "" {
			return true
		}
		_, err := time.Parse(common.DateFormatYYYYMMDD, input)
		return err == nil
	})
}
