package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// UseCase создание бронирования из собранной booking-сессии
type UseCase struct {
	client       BookingAPIClient
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(client BookingAPIClient, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает бронирование через booking API
// Итоговая сумма пересчитывается из зафиксированной цены сессии непосредственно
// перед отправкой. Конфликт слота (409) отдается наверх без повторной отправки:
// пользователь выбирает слот заново по свежему календарю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: user=%d, service=%d: %v",
			req.UserID, req.ServiceID, err)
		return nil, err
	}

	bookingDateTime, err := uc.combineDateTime(req.Date, req.Slot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSlotNotChosen, err)
	}

	totalPrice := domain.CalculateTotal(req.UnitPrice, req.Quantity, req.Discount)

	apiReq := &bookingClient.CreateBookingRequest{
		ServiceID:   req.ServiceID,
		BookingDate: bookingDateTime.Format(time.RFC3339),
		Quantity:    req.Quantity,
		TotalPrice:  totalPrice,
		Notes:       normalizeNotes(req.Notes),
	}
	if req.Discount != nil {
		discountID := req.Discount.DiscountID
		apiReq.DiscountID = &discountID
	}

	idempotencyKey := uuid.NewString()

	uc.logger.Info("CreateBooking: user=%d, service=%d, datetime=%s, quantity=%d, total=%d",
		req.UserID, req.ServiceID, apiReq.BookingDate, req.Quantity, totalPrice)

	booking, err := uc.client.CreateBooking(ctx, req.UserID, idempotencyKey, apiReq)
	if err != nil {
		switch {
		case errors.Is(err, bookingClient.ErrSlotConflict):
			uc.logger.Warn("CreateBooking: slot conflict: user=%d, service=%d, datetime=%s",
				req.UserID, req.ServiceID, apiReq.BookingDate)
			return nil, ErrSlotTaken
		case errors.Is(err, bookingClient.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, bookingClient.ErrBookingRejected):
			uc.logger.Warn("CreateBooking: rejected by API: user=%d, service=%d: %v",
				req.UserID, req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		default:
			uc.logger.Error("CreateBooking: API call failed: user=%d, service=%d: %v",
				req.UserID, req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// Новое бронирование должно приходить в начальном статусе жизненного цикла
	if booking.Status != domain.InitialStatus() {
		uc.logger.Warn("CreateBooking: booking=%d created with status %s instead of %s",
			booking.ID, booking.Status, domain.InitialStatus())
	}

	uc.logger.Info("CreateBooking: booking id=%d created for user=%d", booking.ID, req.UserID)

	return &Response{
		ID:              booking.ID,
		ServiceID:       booking.ServiceID,
		UserID:          booking.UserID,
		ProviderID:      booking.ProviderID,
		BookingDateTime: booking.BookingDateTime,
		Quantity:        booking.Quantity,
		Notes:           booking.Notes,
		DiscountID:      booking.DiscountID,
		TotalPrice:      booking.TotalPrice,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
	}, nil
}

// combineDateTime собирает дату и метку "HH:MM" в datetime в гражданском
// часовом поясе платформы
func (uc *UseCase) combineDateTime(date time.Time, slot types.TimeString) (time.Time, error) {
	minutes, err := slot.MinuteOfDay()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, uc.location), nil
}
