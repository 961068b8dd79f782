package middlewares

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds each request with a deadline. Handlers do not implement
// per-call timeouts themselves; outbound calls inherit this context, so a
// stalled upstream provider fails the whole request when the deadline
// fires, mirroring a hosting platform's request timeout.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
