package create_feedback

import (
	"context"
	"errors"
	"fmt"

	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
)

// UseCase создание отзыва о завершенном бронировании
type UseCase struct {
	client BookingAPIClient
	logger Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(client BookingAPIClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute создает отзыв через booking API
// Право на отзыв проверяется локально: бронирование завершено, принадлежит
// пользователю и отзыва на него еще нет. Список отзывов читается с graceful
// degradation (при недоступности - пустой), поэтому дубликат окончательно
// отсекает сам API по 409
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateFeedback: validation failed: user=%d, booking=%d: %v",
			req.UserID, req.BookingID, err)
		return nil, err
	}

	booking, err := uc.client.GetBooking(ctx, req.UserID, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingClient.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingClient.ErrAccessDenied):
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("CreateFeedback: failed to get booking=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if !booking.IsOwnedBy(req.UserID) {
		uc.logger.Warn("CreateFeedback: user=%d is not the owner of booking=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeReviewedBy(req.UserID) {
		uc.logger.Warn("CreateFeedback: booking=%d in status %s is not reviewable",
			req.BookingID, booking.Status)
		return nil, fmt.Errorf("%w: status %s", ErrNotCompleted, booking.Status)
	}

	for _, feedback := range uc.client.ListFeedbacksWithGracefulDegradation(ctx, req.UserID) {
		if feedback.BookingID == req.BookingID {
			uc.logger.Warn("CreateFeedback: feedback for booking=%d already exists", req.BookingID)
			return nil, ErrFeedbackExists
		}
	}

	feedback, err := uc.client.CreateFeedback(ctx, req.UserID, &bookingClient.CreateFeedbackRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingClient.ErrFeedbackExists):
			return nil, ErrFeedbackExists
		case errors.Is(err, bookingClient.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingClient.ErrAccessDenied):
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("CreateFeedback: API call failed: user=%d, booking=%d: %v",
				req.UserID, req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateFeedback: feedback id=%d created for booking=%d by user=%d",
		feedback.ID, req.BookingID, req.UserID)

	return &Response{
		ID:        feedback.ID,
		BookingID: feedback.BookingID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}, nil
}
