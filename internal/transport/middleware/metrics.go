package middleware

import (
	"net/http"
	"time"

	"github.com/sthacker-ai/NexusLog/internal/telemetry"
)

// Metrics returns middleware that records request counts and latency by
// route pattern. It must wrap the ServeMux directly: the mux sets
// r.Pattern on the request it is handed.
func Metrics(m *telemetry.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.HTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
