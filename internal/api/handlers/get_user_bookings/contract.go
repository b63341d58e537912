package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-BookingGateway/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса чтения бронирований
type BookingsService interface {
	GetUserBookings(ctx context.Context, userID int64, statusFilter string) (*models.BookingList, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
