package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sprintsync/sprintsync-api/internal/platform/metrics"
)

// statusRecorder captures the response status code for logging and
// metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records per-endpoint latency and errors and logs
// one line per request. Endpoints are keyed by method and route
// pattern so path parameters do not explode the cardinality.
func MetricsMiddleware(tracker *metrics.Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			latency := time.Since(start)
			endpoint := r.Method + " " + routePattern(r)

			tracker.RecordLatency(endpoint, latency)
			if rec.status >= http.StatusInternalServerError {
				tracker.RecordError(endpoint, fmt.Errorf("status %d", rec.status))
			}

			slog.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int64("latency_ms", latency.Milliseconds()))
		})
	}
}

// routePattern returns the chi route pattern for the request, falling
// back to the raw path when the router has not matched one.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
