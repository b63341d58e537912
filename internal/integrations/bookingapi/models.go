package bookingapi

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// Service модель услуги из booking API
type Service struct {
	ID              int64  `json:"id"`
	ProviderID      int64  `json:"providerId"`
	Name            string `json:"name"`
	UnitPrice       int64  `json:"unitPrice"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToDomain конвертирует wire-модель в domain модель
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		ProviderID:      s.ProviderID,
		Name:            s.Name,
		UnitPrice:       s.UnitPrice,
		DurationMinutes: s.DurationMinutes,
	}
}

// BookedTimesResponse ответ на запрос занятых меток времени
type BookedTimesResponse struct {
	BookedTimes []string `json:"bookedTimes"`
}

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	ServiceID   int64   `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // ISO-8601 datetime
	Quantity    int     `json:"quantity"`
	TotalPrice  int64   `json:"totalPrice"`
	Notes       *string `json:"notes,omitempty"`
	DiscountID  *int64  `json:"discountId,omitempty"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancelReason string `json:"cancelReason"`
}

// CreateFeedbackRequest запрос на создание отзыва
type CreateFeedbackRequest struct {
	BookingID int64   `json:"bookingId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// Booking модель бронирования из booking API
type Booking struct {
	ID           int64   `json:"id"`
	ServiceID    int64   `json:"serviceId"`
	UserID       int64   `json:"userId"`
	ProviderID   int64   `json:"providerId"`
	BookingDate  string  `json:"bookingDate"` // ISO-8601 datetime
	Quantity     int     `json:"quantity"`
	Notes        *string `json:"notes,omitempty"`
	DiscountID   *int64  `json:"discountId,omitempty"`
	TotalPrice   int64   `json:"totalPrice"`
	Status       string  `json:"status"`
	CancelReason *string `json:"cancelReason,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToDomain конвертирует wire-модель в domain модель
// Неразборчивые даты не считаются фатальными: поле остается нулевым,
// статус валидируется вызывающей стороной при необходимости
func (b *Booking) ToDomain() *domain.Booking {
	booking := &domain.Booking{
		ID:           b.ID,
		ServiceID:    b.ServiceID,
		UserID:       b.UserID,
		ProviderID:   b.ProviderID,
		Quantity:     b.Quantity,
		Notes:        b.Notes,
		DiscountID:   b.DiscountID,
		TotalPrice:   b.TotalPrice,
		Status:       domain.BookingStatus(b.Status),
		CancelReason: b.CancelReason,
	}

	if t, err := time.Parse(time.RFC3339, b.BookingDate); err == nil {
		booking.BookingDateTime = t
	}
	if t, err := time.Parse(time.RFC3339, b.CreatedAt); err == nil {
		booking.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, b.UpdatedAt); err == nil {
		booking.UpdatedAt = t
	}

	return booking
}

// Feedback модель отзыва из booking API
type Feedback struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"bookingId"`
	UserID    int64   `json:"userId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToDomain конвертирует wire-модель в domain модель
func (f *Feedback) ToDomain() *domain.Feedback {
	feedback := &domain.Feedback{
		ID:        f.ID,
		BookingID: f.BookingID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Comment:   f.Comment,
	}
	if t, err := time.Parse(time.RFC3339, f.CreatedAt); err == nil {
		feedback.CreatedAt = t
	}
	return feedback
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

// FeedbackListResponse ответ со списком отзывов
type FeedbackListResponse struct {
	Feedbacks []Feedback `json:"feedbacks"`
}

// ErrorResponse модель ошибки от booking API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
