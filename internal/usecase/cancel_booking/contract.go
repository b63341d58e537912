package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// BookingAPIClient интерфейс клиента booking API
type BookingAPIClient interface {
	GetBooking(ctx context.Context, userID int64, bookingID int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, userID int64, bookingID int64, reason string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
