package booking_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/service/session/models"
	createBooking "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// SessionService интерфейс сервиса booking-сессий
type SessionService interface {
	Start(ctx context.Context, userID int64, serviceID int64) (*models.SessionView, error)
	Get(sessionID string, userID int64) (*models.SessionView, error)
	SetQuantity(sessionID string, userID int64, quantity int) (*models.SessionView, error)
	SelectSlot(sessionID string, userID int64, date time.Time, slot types.TimeString) (*models.SessionView, error)
	ApplyCoupon(ctx context.Context, sessionID string, userID int64, code string) (*models.SessionView, error)
	RemoveCoupon(sessionID string, userID int64) (*models.SessionView, error)
	Snapshot(sessionID string, userID int64) (*models.Snapshot, error)
	Close(sessionID string, userID int64) error
}

// CreateBookingUseCase интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
