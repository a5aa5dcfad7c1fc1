package common

import (
	"errors"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrInvalidBasis        = errors.New("invalid ledger basis, must be cash or accrual")
	ErrMissingScope        = errors.New("property id or unit id is required")
	ErrProviderFailure     = errors.New("balance provider failure")
	ErrMalformedBalance    = errors.New("balance provider returned malformed data")
	ErrBookBalanceNotFound = errors.New("book balance not available")
	ErrGLAccountRouting    = errors.New("gl account cannot be both bank account and security deposit liability")
	ErrJobLocked           = errors.New("job is already running")
)
