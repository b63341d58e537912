package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BookingGateway/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model of a single calendar slot
type SlotResponse struct {
	Time     string `json:"time"` // "HH:MM"
	Disabled bool   `json:"disabled"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID       int64          `json:"serviceId"`
	Date            string         `json:"date"` // "YYYY-MM-DD"
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(userID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:    userID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:     slot.Label.String(),
			Disabled: slot.Disabled,
		})
	}

	return &AvailableSlotsResponse{
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
