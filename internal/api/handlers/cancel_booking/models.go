package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/SMC-BookingGateway/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID           int64   `json:"id"`
	ServiceID    int64   `json:"serviceId"`
	Status       string  `json:"status"`
	CancelReason *string `json:"cancelReason,omitempty"`
	UpdatedAt    string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:           resp.ID,
		ServiceID:    resp.ServiceID,
		Status:       resp.Status,
		CancelReason: resp.CancelReason,
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
