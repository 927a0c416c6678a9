package http

import (
	"net/http"

	"tgage/internal/platform/net/http/bind"
)

// Endpoint returns data to envelope, an error to map, or a ready Response
type Endpoint func(*http.Request) (any, error)

// Wrap turns an Endpoint into a Handler that writes the envelope
func Wrap(fn Endpoint) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		switch {
		case err != nil:
			return Error(err)
		case out == nil:
			return OK(nil)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}

// WrapBody decodes and validates a T from the JSON body before calling fn
func WrapBody[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Wrap(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// GetJSON mounts an enveloped GET endpoint
func GetJSON(r Router, path string, fn Endpoint) { r.Get(path, Wrap(fn)) }

// PostJSON mounts an enveloped POST endpoint with a bound body
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, WrapBody(fn))
}
