package metrics

import (
	"easybooking/config"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const ResultSuccess = "success"

type Metrics interface {
	// ReservationOperation counts a lifecycle operation by its result, either
	// ResultSuccess or a failure kind.
	ReservationOperation(operation, result string)
	SweepCompleted(count int64)
	HTTPRequest(method, route string, status int, duration time.Duration)
	Handler() http.Handler
}

type metricsImpl struct {
	registry *prometheus.Registry

	reservationOperations *prometheus.CounterVec
	sweepCompleted        prometheus.Counter
	httpRequests          *prometheus.CounterVec
	httpDuration          *prometheus.HistogramVec
}

// New registers the service metrics on a dedicated registry.
func New(cfg *config.Config) Metrics {
	namespace := cfg.Metrics.Namespace
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &metricsImpl{
		registry: registry,

		reservationOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_operations_total",
				Help:      "Count of reservation operations by result.",
			},
			[]string{"operation", "result"},
		),

		sweepCompleted: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_sweep_completed_total",
				Help:      "Count of reservations marked completed by the sweep.",
			},
		),

		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Count of HTTP requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),

		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Time to serve an HTTP request.",
				Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
	}
}

func (m *metricsImpl) ReservationOperation(operation, result string) {
	m.reservationOperations.WithLabelValues(operation, result).Inc()
}

func (m *metricsImpl) SweepCompleted(count int64) {
	m.sweepCompleted.Add(float64(count))
}

func (m *metricsImpl) HTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *metricsImpl) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
