package http

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// RateLimitMiddleware keys buckets on the connection's RemoteAddr.
// Forwarding headers are client controlled and never consulted.
func RateLimitMiddleware(limiter *RateLimiter, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			ok, retryAfter := limiter.Allow(client)
			if !ok {
				logger.Debug().Str("client", client).Dur("retry_after", retryAfter).Msg("rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(errorResponse{Error: "rate limit exceeded"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
