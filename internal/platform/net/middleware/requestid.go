package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"tgage/internal/platform/logger"
	pnet "tgage/internal/platform/net"
)

// RequestIDHeader is read from clients and echoed back on responses
const RequestIDHeader = "X-Request-ID"

const maxInboundIDLen = 128

// RequestID propagates a sane inbound X-Request-ID or mints a uuid, stores it
// for chi and the logger, and echoes it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !saneID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := logger.WithRequest(pnet.WithRequest(r.Context(), id), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func saneID(s string) bool {
	if s == "" || len(s) > maxInboundIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}
