package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging logs every request once it completes, with its status and duration.
// The user ID is included when the auth gate ran further down the chain.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			// The auth gate stores identity on a derived request, so capture it on the way back.
			var userID string
			next.ServeHTTP(rec, r.WithContext(withUserSink(r.Context(), &userID)))

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"user_id", userID,
				"remote_addr", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
