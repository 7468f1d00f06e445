package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/Fantasim/site/internal/config"
	"github.com/Fantasim/site/internal/httputil"
)

// RateLimit rejects requests beyond a process-wide token bucket of rps
// requests per second with the given burst. rps <= 0 disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		slog.Info("rate limiting disabled")
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	slog.Debug("rate limiter created", "rps", rps, "burst", burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				slog.Warn("rate limit exceeded",
					"path", r.URL.Path,
					"remoteAddr", r.RemoteAddr,
				)
				w.Header().Set("Retry-After", "1")
				httputil.Error(w, http.StatusTooManyRequests, config.ErrorRateLimited, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
