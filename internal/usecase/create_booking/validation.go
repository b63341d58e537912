package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/pkg/ptr"
)

// validateRequest валидирует входные данные запроса
// Все проверки локальные: при ошибке сетевой вызов не выполняется
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInternal)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInternal)
	}

	if req.Quantity < domain.MinQuantity || req.Quantity > domain.MaxQuantity {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, req.Quantity)
	}

	// Дата и время должны быть выбраны
	if req.Date.IsZero() || req.Slot.IsZero() {
		return ErrSlotNotChosen
	}

	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotNotChosen, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return ErrNotesTooLong
	}

	return validateSlotNotInPast(req, now)
}

// normalizeNotes обрезает пробелы и превращает пустой комментарий в отсутствующий
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return ptr.Ptr(trimmed)
}

// validateSlotNotInPast проверяет, что выбранный слот еще не прошел
// Правило календаря: сегодняшние слоты с минутой начала <= текущей минуты
// заблокированы, будущие даты проходят всегда
func validateSlotNotInPast(req *Request, now time.Time) error {
	dateOnly := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrSlotInPast
	}

	if dateOnly.Equal(nowOnly) {
		slotMinutes, err := req.Slot.MinuteOfDay()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSlotNotChosen, err)
		}
		nowMinutes := now.Hour()*60 + now.Minute()
		if slotMinutes <= nowMinutes {
			return ErrSlotInPast
		}
	}

	return nil
}
