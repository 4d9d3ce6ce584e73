// Package metrics provides Prometheus instrumentation.
//
// The standard HTTP metrics are wired as middleware in internal/server; the
// AI metrics are recorded by the diagnosis composer around each completion
// call. Scrape http://localhost:8080/metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "elgarage",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "elgarage",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "elgarage",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// AIRequestTotal counts completion calls by outcome.
	AIRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "elgarage",
			Subsystem: "ai",
			Name:      "requests_total",
			Help:      "Total completion-service calls.",
		},
		[]string{"status"}, // "ok" | "error"
	)

	// AIRequestDuration tracks completion call latency.
	AIRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "elgarage",
			Subsystem: "ai",
			Name:      "request_duration_seconds",
			Help:      "Duration of completion-service calls in seconds.",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30},
		},
	)
)

// DefaultRegistry is the Prometheus registry used by the app.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		AIRequestTotal,
		AIRequestDuration,
	)
}

// ObserveAICall records one completion call.
func ObserveAICall(start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	AIRequestTotal.WithLabelValues(status).Inc()
	AIRequestDuration.Observe(time.Since(start).Seconds())
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records Prometheus metrics for every request: duration
// histogram, total counter, in-flight gauge.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			// Resolved after routing so the label is the route pattern,
			// not the raw URL, keeping cardinality bounded.
			path := routeLabel(r)
			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// routeLabel returns the chi route pattern matched for r. Requests that hit
// no registered route collapse into a single "unmatched" value.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// Handler exposes the Prometheus metrics page. Mount it on /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
