// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	phttp "tgage/internal/platform/net/http"
	"tgage/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// AdaptChi wraps a chi mux in the Router seam
func AdaptChi(m *chi.Mux) Router { return phttp.AdaptChi(m) }

// URLParam reads a chi path parameter
func URLParam(r *http.Request, name string) string { return phttp.URLParam(r, name) }

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON writes v with status and no envelope
func JSON(w http.ResponseWriter, status int, v any) { phttp.JSON(w, status, v) }

// Text writes a plain text body
func Text(w http.ResponseWriter, status int, s string) { phttp.Text(w, status, s) }

// Fail writes the flat {error, details} body
func Fail(w http.ResponseWriter, summary string, err error) { phttp.RespondFailure(w, summary, err) }

// Validate runs struct validation with the shared validator
func Validate(v any) error { return bind.Validate(v) }

// Call adapts a handler that takes no JSON body into the envelope
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.Wrap(fn) }

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
