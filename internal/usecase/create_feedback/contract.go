package create_feedback

import (
	"context"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента booking API
type BookingAPIClient interface {
	GetBooking(ctx context.Context, userID int64, bookingID int64) (*domain.Booking, error)
	ListFeedbacksWithGracefulDegradation(ctx context.Context, userID int64) []*domain.Feedback
	CreateFeedback(ctx context.Context, userID int64, req *bookingapi.CreateFeedbackRequest) (*domain.Feedback, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
