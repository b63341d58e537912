package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingGateway/internal/service/bookings/models"
)

// Service читающие операции над бронированиями пользователя
// Обертка над booking API: добавляет проверку владельца и вычисляемые
// признаки доступных действий (отмена, отзыв)
type Service struct {
	client BookingAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(client BookingAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetByID возвращает бронирование пользователя по ID
func (s *Service) GetByID(ctx context.Context, userID int64, bookingID int64) (*models.Booking, error) {
	booking, err := s.client.GetBooking(ctx, userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingClient.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingClient.ErrAccessDenied):
			return nil, ErrAccessDenied
		default:
			s.logger.Error("GetByID: failed to get booking=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if !booking.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: user=%d is not the owner of booking=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	dto := toDTO(booking, userID)
	return &dto, nil
}

// GetUserBookings возвращает бронирования пользователя
// Непустой statusFilter оставляет только бронирования в указанном статусе,
// неизвестный статус отклоняется до обращения к booking API
func (s *Service) GetUserBookings(ctx context.Context, userID int64, statusFilter string) (*models.BookingList, error) {
	var filter domain.BookingStatus
	if statusFilter != "" {
		parsed, err := domain.ParseStatus(statusFilter)
		if err != nil {
			s.logger.Warn("GetUserBookings: user=%d: %v", userID, err)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, statusFilter)
		}
		filter = parsed
	}

	bookings, err := s.client.ListUserBookings(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to list bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	list := &models.BookingList{
		Bookings: make([]models.Booking, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if filter != "" && booking.Status != filter {
			continue
		}
		list.Bookings = append(list.Bookings, toDTO(booking, userID))
	}
	list.Total = len(list.Bookings)

	return list, nil
}

// toDTO собирает DTO с вычисленными признаками доступных действий
func toDTO(booking *domain.Booking, userID int64) models.Booking {
	return models.Booking{
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
		CancelReason:    booking.CancelReason,
		CanBeCancelled:  booking.CanBeCancelled(),
		CanBeReviewed:   booking.CanBeReviewedBy(userID),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
