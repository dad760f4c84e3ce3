// Package metrics прометеевские метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик HTTP-слоя и фонового планировщика
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SchedulerTicksTotal       prometheus.Counter
	SchedulerTransitionsTotal *prometheus.CounterVec
}

// New регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		SchedulerTicksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "maintenance_scheduler_ticks_total",
			Help:        "Total number of maintenance scheduler ticks",
			ConstLabels: constLabels,
		}),

		SchedulerTransitionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "maintenance_scheduler_transitions_total",
			Help:        "Maintenance window status transitions performed by the scheduler",
			ConstLabels: constLabels,
		}, []string{"transition"}),
	}
}

// IncTick инкрементирует счетчик тиков планировщика
func (m *Metrics) IncTick() {
	m.SchedulerTicksTotal.Inc()
}

// AddTransitions учитывает n переводов статусов указанного вида
func (m *Metrics) AddTransitions(transition string, n int) {
	m.SchedulerTransitionsTotal.WithLabelValues(transition).Add(float64(n))
}

// ObserveHTTPRequest учитывает завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}
