package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github-activity/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts requests and their latency by method, chi route pattern and status
// Unmatched paths are labelled "unmatched" to keep cardinality bounded
func Metrics(reg *metrics.Registry) (func(http.Handler) http.Handler, error) {
	labels := []string{"method", "route", "status"}
	total, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served",
	}, labels)
	if err != nil {
		return nil, err
	}
	latency, err := reg.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, labels)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			l := prometheus.Labels{"method": r.Method, "route": route, "status": strconv.Itoa(sw.status)}
			total.With(l).Inc()
			latency.With(l).Observe(time.Since(start).Seconds())
		})
	}, nil
}
