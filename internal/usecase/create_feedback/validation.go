package create_feedback

import (
	"fmt"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInternal)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInternal)
	}

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: %d", ErrInvalidRating, req.Rating)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return ErrCommentTooLong
	}

	return nil
}
