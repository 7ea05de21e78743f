package middleware

import (
	"net/http"
	"time"

	"github.com/mmynk/utilityportal/internal/metrics"
)

// Instrument records request count and latency for one route.
func Instrument(m *metrics.Metrics, route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)
		m.ObserveRequest(route, r.Method, rec.status, time.Since(start))
	})
}
