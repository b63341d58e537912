package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// BookingAPIClient интерфейс клиента booking API
type BookingAPIClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// DiscountAPIClient интерфейс клиента discount API
type DiscountAPIClient interface {
	Validate(ctx context.Context, code string, serviceID int64, totalAmount int64) (*domain.Discount, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Gauge интерфейс счетчика активных сессий (prometheus.Gauge его реализует)
type Gauge interface {
	Inc()
	Dec()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
