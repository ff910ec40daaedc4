package handler

import (
	"net"
	"net/http"

	"github.com/trhgquan/flight-manager/internal/platform/ratelimit"
)

// RateLimit rejects callers that exceed their per-address token bucket.
func RateLimit(limiter *ratelimit.KeyedLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if !limiter.Allow(host) {
			w.Header().Set("Content-Type", "application/json")
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next(w, r)
	}
}
