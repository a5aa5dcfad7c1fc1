package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

type (
	MapErrs map[string]ErrorDetail

	// ErrorDetail carries a stable machine code next to the human message,
	// handlers surface both in the error body.
	ErrorDetail struct {
		Code         string
		ErrorMessage error
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func (e ErrorDetail) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.ErrorMessage != nil {
		msg = e.ErrorMessage.Error()
	}
	return json.Marshal(struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	}{e.Code, msg})
}

// GetErrMap looks up key in MapErrors. The optional cause is appended to the message.
func GetErrMap(key string, cause ...string) ErrorDetail {
	v, ok := MapErrors[key]
	if !ok {
		return ErrorDetail{
			Code:         key,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(cause) > 0 && cause[0] != "" {
		v.ErrorMessage = fmt.Errorf("%w caused by %s", v.ErrorMessage, cause[0])
	}

	return v
}
