package get_user_bookings

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/service/bookings/models"
)

// BookingResponse HTTP model of a single booking in the list
type BookingResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	ProviderID      int64   `json:"providerId"`
	BookingDateTime string  `json:"bookingDateTime"`
	Quantity        int     `json:"quantity"`
	TotalPrice      int64   `json:"totalPrice"`
	Status          string  `json:"status"`
	CancelReason    *string `json:"cancelReason,omitempty"`
	CanBeCancelled  bool    `json:"canBeCancelled"`
	CanBeReviewed   bool    `json:"canBeReviewed"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromServiceModel конвертирует DTO сервиса в HTTP response
func FromServiceModel(list *models.BookingList) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(list.Bookings)),
		Total:    list.Total,
	}

	for _, booking := range list.Bookings {
		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:              booking.ID,
			ServiceID:       booking.ServiceID,
			ProviderID:      booking.ProviderID,
			BookingDateTime: booking.BookingDateTime.Format(time.RFC3339),
			Quantity:        booking.Quantity,
			TotalPrice:      booking.TotalPrice,
			Status:          booking.Status,
			CancelReason:    booking.CancelReason,
			CanBeCancelled:  booking.CanBeCancelled,
			CanBeReviewed:   booking.CanBeReviewed,
			CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
