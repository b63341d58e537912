package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента booking API
type BookingAPIClient interface {
	CreateBooking(ctx context.Context, userID int64, idempotencyKey string, req *bookingapi.CreateBookingRequest) (*domain.Booking, error)
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
