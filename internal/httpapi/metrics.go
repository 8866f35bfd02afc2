package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"flipd/internal/slotpool"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flipd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "flipd",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	httpInflight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "flipd",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "In-flight HTTP requests",
		},
		[]string{"method"},
	)

	poolIntentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flipd",
			Subsystem: "pool",
			Name:      "intents_total",
			Help:      "Transition intents emitted by the slot pool",
		},
		[]string{"kind"},
	)

	poolShiftsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flipd",
			Subsystem: "pool",
			Name:      "shifts_total",
			Help:      "Plans published by the slot pool",
		},
		[]string{"changed"},
	)

	poolResidentSlots = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "flipd",
			Subsystem: "pool",
			Name:      "resident_slots",
			Help:      "Slots resident after the last plan",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, httpInflight,
		poolIntentsTotal, poolShiftsTotal, poolResidentSlots)
}

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming-capable writers streaming through the recorder.
func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// MetricsMiddleware instruments requests for Prometheus
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.Method
		httpInflight.WithLabelValues(method).Inc()
		defer httpInflight.WithLabelValues(method).Dec()

		sr := &statusRecorder{ResponseWriter: w, status: 200}
		start := time.Now()
		next.ServeHTTP(sr, r)
		// The route pattern is only known once chi has routed the request.
		path := routePatternOrPath(r)
		statusLabel := itoa(sr.status)
		dur := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(path, method, statusLabel).Inc()
		httpRequestDuration.WithLabelValues(path, method, statusLabel).Observe(dur)
	})
}

// routePatternOrPath returns the chi route pattern if available, otherwise
// falls back to URL path. This avoids high-cardinality label values.
func routePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// PlanMetrics is a slotpool.EventPublisher that feeds the pool metrics.
type PlanMetrics struct{}

// Publish implements slotpool.EventPublisher.
func (PlanMetrics) Publish(e slotpool.Event) {
	switch e.Name {
	case slotpool.EventPlan:
		for _, in := range e.Plan.Intents {
			poolIntentsTotal.WithLabelValues(string(in.Kind)).Inc()
		}
		poolShiftsTotal.WithLabelValues(strconv.FormatBool(e.Plan.Changed)).Inc()
		poolResidentSlots.Set(float64(e.Plan.Resident))
	case slotpool.EventConfigured:
		poolResidentSlots.Set(0)
	}
}

// fast integer to ascii for small set of status codes
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
