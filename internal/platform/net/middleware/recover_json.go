package middleware

import (
	"net/http"
	"runtime/debug"

	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/logger"
	phttp "tgage/internal/platform/net/http"
)

// RecoverJSON converts panics into a flat JSON 500 and logs the stack with the request id.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			phttp.RespondFailure(w, "Internal server error", perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
