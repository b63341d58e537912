package booking_session

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/internal/service/session/models"
	createBooking "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_booking"
)

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	ServiceID int64 `json:"serviceId"`
}

// SetQuantityRequest HTTP request model
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Date string `json:"date"` // "2025-10-15"
	Time string `json:"time"` // "10:00"
}

// ApplyCouponRequest HTTP request model
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// SubmitRequest HTTP request model
type SubmitRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// DiscountResponse applied coupon state
type DiscountResponse struct {
	DiscountID     int64  `json:"discountId"`
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
}

// SessionResponse HTTP model of the booking form state
type SessionResponse struct {
	ID              string            `json:"id"`
	ServiceID       int64             `json:"serviceId"`
	ServiceName     string            `json:"serviceName"`
	UnitPrice       int64             `json:"unitPrice"`
	DurationMinutes int               `json:"durationMinutes"`
	Quantity        int               `json:"quantity"`
	Date            *string           `json:"date,omitempty"` // "YYYY-MM-DD"
	Time            *string           `json:"time,omitempty"` // "HH:MM"
	Discount        *DiscountResponse `json:"discount,omitempty"`
	BaseTotal       int64             `json:"baseTotal"`
	TotalPrice      int64             `json:"totalPrice"`
}

// BookingResponse HTTP model of the created booking
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
	CreatedAt       string  `json:"createdAt"`
}

// FromSessionView конвертирует состояние сессии в HTTP response
func FromSessionView(view *models.SessionView) *SessionResponse {
	resp := &SessionResponse{
		ID:              view.ID,
		ServiceID:       view.ServiceID,
		ServiceName:     view.ServiceName,
		UnitPrice:       view.UnitPrice,
		DurationMinutes: view.DurationMinutes,
		Quantity:        view.Quantity,
		BaseTotal:       view.BaseTotal,
		TotalPrice:      view.TotalPrice,
	}

	if view.Date != nil {
		date := view.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if !view.Slot.IsZero() {
		slot := view.Slot.String()
		resp.Time = &slot
	}
	if view.Discount != nil {
		resp.Discount = &DiscountResponse{
			DiscountID:     view.Discount.DiscountID,
			Code:           view.Discount.Code,
			DiscountAmount: view.Discount.DiscountAmount,
		}
	}

	return resp
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ServiceID:       resp.ServiceID,
		UserID:          resp.UserID,
		ProviderID:      resp.ProviderID,
		BookingDateTime: resp.BookingDateTime.Format(time.RFC3339),
		Quantity:        resp.Quantity,
		Notes:           resp.Notes,
		DiscountID:      resp.DiscountID,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
