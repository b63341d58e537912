package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
// Покрывает входящий HTTP трафик и исходящие вызовы внешних API
type Metrics struct {
	// Входящие HTTP запросы
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Исходящие вызовы внешних API (booking API, discount API)
	OutboundRequestsTotal   *prometheus.CounterVec
	OutboundRequestDuration *prometheus.HistogramVec
	OutboundErrorsTotal     *prometheus.CounterVec

	// Активные booking-сессии
	ActiveSessions prometheus.Gauge
}

// New создает и регистрирует метрики в дефолтном registry
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
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),

		OutboundRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "outbound_requests_total",
			Help:        "Total number of outbound requests to external APIs",
			ConstLabels: constLabels,
		}, []string{"target", "method", "status"}),

		OutboundRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "outbound_request_duration_seconds",
			Help:        "Outbound request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "method"}),

		OutboundErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "outbound_errors_total",
			Help:        "Total number of failed outbound requests (transport errors)",
			ConstLabels: constLabels,
		}, []string{"target"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Number of active booking sessions",
			ConstLabels: constLabels,
		}),
	}
}
