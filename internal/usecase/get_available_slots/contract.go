package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// BookingAPIClient интерфейс клиента booking API
// Занятые метки запрашиваются через degradation-обертку: сбой чтения
// не блокирует календарь (fail-open для путей чтения)
type BookingAPIClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
	GetBookedTimesWithGracefulDegradation(ctx context.Context, serviceID int64, date time.Time) domain.BookedTimeSet
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
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
