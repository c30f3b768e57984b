package middleware

import (
	"net/http"
	"time"

	"user-portal/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records per-request counters and latency. The chi route pattern is
// used as the route label so path parameters don't explode cardinality.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			collector.RecordRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
