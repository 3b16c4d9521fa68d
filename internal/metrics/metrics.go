package metrics

import (
	"net/http"
	"strconv"
	"time"

	"demohost/pkg/harness"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the scenario host's Prometheus collectors. It implements
// harness.Observer so the engine can feed it directly.
type Metrics struct {
	registry *prometheus.Registry

	ScenarioRuns     *prometheus.CounterVec
	ScenarioDuration *prometheus.HistogramVec
	Interrupts       *prometheus.CounterVec
	RunInProgress    prometheus.Gauge

	// Requests against the metrics endpoint itself
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

var _ harness.Observer = (*Metrics)(nil)

// NewMetrics creates all collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.ScenarioRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demohost_scenario_runs_total",
			Help: "Total number of scenario runs by outcome",
		},
		[]string{"scenario", "outcome"},
	)

	m.ScenarioDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "demohost_scenario_duration_seconds",
			Help:    "Duration of scenario runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"scenario"},
	)

	m.Interrupts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demohost_interrupts_total",
			Help: "Total number of interrupts by harness state",
		},
		[]string{"state"},
	)

	m.RunInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "demohost_run_in_progress",
			Help: "1 while a scenario is running, 0 otherwise",
		},
	)

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demohost_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "demohost_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	m.registry.MustRegister(
		m.ScenarioRuns,
		m.ScenarioDuration,
		m.Interrupts,
		m.RunInProgress,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format, with
// request tracking applied.
func (m *Metrics) Handler() http.Handler {
	return m.RequestTrackingMiddleware(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) RunStarted(string) {
	m.RunInProgress.Set(1)
}

func (m *Metrics) RunFinished(name string, out harness.Outcome) {
	m.RunInProgress.Set(0)
	m.ScenarioRuns.WithLabelValues(name, out.Kind.String()).Inc()
	m.ScenarioDuration.WithLabelValues(name).Observe(out.Elapsed.Seconds())
}

func (m *Metrics) Interrupted(busy bool) {
	state := "idle"
	if busy {
		state = "busy"
	}
	m.Interrupts.WithLabelValues(state).Inc()
}

// Middleware for tracking HTTP requests
func (m *Metrics) RequestTrackingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		m.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rw.statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// responseWriter is a wrapper to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
