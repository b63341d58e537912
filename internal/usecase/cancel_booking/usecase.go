package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
)

// UseCase отмена бронирования с обязательной причиной
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

// Execute отменяет бронирование через booking API
// Пустая причина отклоняется локально до любого сетевого вызова.
// Статус проверяется локально по снимку бронирования, но финальное слово
// за API: состояние могло измениться после загрузки снимка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	reason, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CancelBooking: validation failed: user=%d, booking=%d: %v",
			req.UserID, req.BookingID, err)
		return nil, err
	}

	booking, err := uc.client.GetBooking(ctx, req.UserID, req.BookingID)
	if err != nil {
		return nil, uc.mapClientError("GetBooking", req, err)
	}

	if !booking.IsOwnedBy(req.UserID) {
		uc.logger.Warn("CancelBooking: user=%d is not the owner of booking=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelBooking: booking=%d in status %s cannot be cancelled",
			req.BookingID, booking.Status)
		return nil, fmt.Errorf("%w: status %s", ErrCannotCancel, booking.Status)
	}

	cancelled, err := uc.client.CancelBooking(ctx, req.UserID, req.BookingID, reason)
	if err != nil {
		return nil, uc.mapClientError("CancelBooking", req, err)
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled by user=%d", req.BookingID, req.UserID)

	return &Response{
		ID:           cancelled.ID,
		ServiceID:    cancelled.ServiceID,
		Status:       string(cancelled.Status),
		CancelReason: cancelled.CancelReason,
		UpdatedAt:    cancelled.UpdatedAt,
	}, nil
}

// mapClientError транслирует ошибки клиента booking API в ошибки usecase
func (uc *UseCase) mapClientError(op string, req *Request, err error) error {
	switch {
	case errors.Is(err, bookingClient.ErrBookingNotFound):
		return ErrBookingNotFound
	case errors.Is(err, bookingClient.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, bookingClient.ErrCannotCancel):
		return ErrCannotCancel
	default:
		uc.logger.Error("CancelBooking: %s failed: user=%d, booking=%d: %v",
			op, req.UserID, req.BookingID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
