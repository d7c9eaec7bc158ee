package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "superlists_http_requests_total",
		Help: "Number of HTTP requests by route, method, and status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "superlists_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Metrics returns middleware recording Prometheus request counters and
// latency histograms, labelled by chi route pattern rather than raw path
// to keep cardinality bounded.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
				route := chi.RouteContext(r.Context()).RoutePattern()
				if route == "" {
					route = "unmatched"
				}
				requestDuration.WithLabelValues(route, r.Method).Observe(seconds)
				requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
			}))
			defer timer.ObserveDuration()

			next.ServeHTTP(rec, r)
		})
	}
}
