package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ilyra",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ilyra",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ilyra",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Chat metrics
	chatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ilyra",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total number of chat messages processed",
		},
		[]string{"role", "model"},
	)

	chatGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ilyra",
			Subsystem: "chat",
			Name:      "generation_duration_seconds",
			Help:      "Duration of assistant response generation in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)

	quotaDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ilyra",
			Subsystem: "quota",
			Name:      "denials_total",
			Help:      "Total number of sends denied by plan quota",
		},
		[]string{"plan"},
	)

	// Session metrics
	activeConversations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ilyra",
			Subsystem: "chat",
			Name:      "conversations_active",
			Help:      "Number of conversations currently stored",
		},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordChatMessage records a processed chat message
func RecordChatMessage(role, model string) {
	chatMessagesTotal.WithLabelValues(role, model).Inc()
}

// RecordGeneration records the duration of an assistant generation
func RecordGeneration(provider string, duration time.Duration) {
	chatGenerationDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordQuotaDenial records a send blocked by plan quota
func RecordQuotaDenial(plan string) {
	quotaDenialsTotal.WithLabelValues(plan).Inc()
}

// SetActiveConversations sets the stored conversation gauge
func SetActiveConversations(count float64) {
	activeConversations.Set(count)
}
