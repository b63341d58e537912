package get_booking

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	UserID          int64   `json:"userId"`
	ProviderID      int64   `json:"providerId"`
	BookingDateTime string  `json:"bookingDateTime"`
	Quantity        int     `json:"quantity"`
	Notes           *string `json:"notes,omitempty"`
	DiscountID      *int64  `json:"discountId,omitempty"`
	TotalPrice      int64   `json:"totalPrice"`
	Status          string  `json:"status"`
	CancelReason    *string `json:"cancelReason,omitempty"`
	CanBeCancelled  bool    `json:"canBeCancelled"`
	CanBeReviewed   bool    `json:"canBeReviewed"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromServiceModel конвертирует DTO сервиса в HTTP response
func FromServiceModel(booking *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		ServiceID:       booking.ServiceID,
		UserID:          booking.UserID,
		ProviderID:      booking.ProviderID,
		BookingDateTime: booking.BookingDateTime.Format(time.RFC3339),
		Quantity:        booking.Quantity,
		Notes:           booking.Notes,
		DiscountID:      booking.DiscountID,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		CancelReason:    booking.CancelReason,
		CanBeCancelled:  booking.CanBeCancelled,
		CanBeReviewed:   booking.CanBeReviewed,
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       booking.UpdatedAt.Format(time.RFC3339),
	}
}
