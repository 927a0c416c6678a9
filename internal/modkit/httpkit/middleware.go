package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"tgage/internal/platform/net/middleware"
)

// PoweredBy is stamped on every response; older clients look for it
const PoweredBy = "TelegramAgeChecker"

// StackOptions tunes the root middleware stack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
	Observe     middleware.Observer
}

// BaseStack is applied on the root router so every route, including the
// compat endpoints, gets request ids, panic recovery, the access log and CORS
func BaseStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability, outside recovery so panics are logged as 500s
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest, Observe: o.Observe}),

		// safety
		middleware.RecoverJSON,

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.PoweredBy(PoweredBy),
	}
}

// APIStack is the per scope stack for enveloped JSON routes
func APIStack(timeout time.Duration) []func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}

// Timeout bounds a module's handlers, for routes mounted outside APIStack
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		d = 30 * time.Second
	}
	return middleware.Timeout(d)
}
