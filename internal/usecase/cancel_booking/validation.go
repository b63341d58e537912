package cancel_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Возвращает нормализованную причину отмены (без краевых пробелов)
func validateRequest(req *Request) (string, error) {
	if req.UserID <= 0 {
		return "", fmt.Errorf("%w: userID must be positive", ErrInternal)
	}

	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInternal)
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return "", ErrEmptyCancelReason
	}

	if len(reason) > domain.MaxCancelReasonLength {
		return "", ErrReasonTooLong
	}

	return reason, nil
}
