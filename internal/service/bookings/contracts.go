package bookings

import (
	"context"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// BookingAPIClient интерфейс клиента booking API
type BookingAPIClient interface {
	GetBooking(ctx context.Context, userID int64, bookingID int64) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
