package clientmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BookingGateway/pkg/metrics"
)

// Transport обертка над http.RoundTripper, собирающая метрики
// исходящих вызовов внешних API
type Transport struct {
	target  string
	base    http.RoundTripper
	metrics *metrics.Metrics
}

// Wrap оборачивает базовый transport сборщиком метрик
// target - имя внешнего сервиса для лейбла метрик (например, "booking_api")
func Wrap(base http.RoundTripper, m *metrics.Metrics, target string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		target:  target,
		base:    base,
		metrics: m,
	}
}

// RoundTrip выполняет запрос и записывает метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	duration := time.Since(start).Seconds()
	t.metrics.OutboundRequestDuration.WithLabelValues(t.target, req.Method).Observe(duration)

	if err != nil {
		t.metrics.OutboundErrorsTotal.WithLabelValues(t.target).Inc()
		return nil, err
	}

	t.metrics.OutboundRequestsTotal.
		WithLabelValues(t.target, req.Method, strconv.Itoa(resp.StatusCode)).
		Inc()

	return resp, nil
}
