package httpkit

import (
	"net/http"

	phttp "tgage/internal/platform/net/http"
)

// Get registers an enveloped endpoint that reads no body
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// PostJSON binds and validates a JSON body of type T, then envelopes the result
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}
