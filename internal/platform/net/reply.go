package net

import (
	"net/http"

	perr "tgage/internal/platform/errors"
)

// Failure is the flat error body of the public lookup surface
type Failure struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Fail pairs a fixed summary with the cause's message. The status comes from
// the error code; foreign errors are 500
func Fail(summary string, err error) (int, Failure) {
	if err == nil {
		return http.StatusInternalServerError, Failure{Error: summary}
	}
	details := err.Error()
	if e, ok := perr.As(err); ok {
		details = e.Message()
	}
	return perr.HTTPStatus(err), Failure{Error: summary, Details: details}
}
