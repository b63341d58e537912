package get_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingGateway/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса чтения бронирований
type BookingsService interface {
	GetByID(ctx context.Context, userID int64, bookingID int64) (*models.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
