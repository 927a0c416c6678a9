package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	perr "tgage/internal/platform/errors"
)

// APIError is a non-ok Bot API reply
type APIError struct {
	Method      string
	Status      int
	Code        int
	Description string
	RetryAfter  time.Duration
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram %s: status %d", e.Method, e.Status)
	}
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.effectiveCode(), e.Description)
}

func (e *APIError) effectiveCode() int {
	if e.Code != 0 {
		return e.Code
	}
	return e.Status
}

// ErrorCode classifies the reply into a platform code
func (e *APIError) ErrorCode() perr.ErrorCode {
	code := e.effectiveCode()
	switch {
	case code == http.StatusTooManyRequests:
		return perr.ErrorCodeTooManyRequests
	case code >= http.StatusInternalServerError:
		return perr.ErrorCodeUnavailable
	case code == http.StatusUnauthorized:
		return perr.ErrorCodeUnauthorized
	case code == http.StatusBadRequest && strings.Contains(strings.ToLower(e.Description), "not found"):
		return perr.ErrorCodeNotFound
	default:
		return perr.ErrorCodeUnknown
	}
}

func (e *APIError) toPerr() error {
	msg := e.Description
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	err := perr.Wrap(e, e.ErrorCode(), msg)
	if e.RetryAfter > 0 {
		err = perr.WithRetryAfter(err, e.RetryAfter)
	}
	return err
}

// AsAPIError extracts the Bot API reply behind err
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNotFound reports a "chat not found" style reply
func IsNotFound(err error) bool { return perr.IsCode(err, perr.ErrorCodeNotFound) }
