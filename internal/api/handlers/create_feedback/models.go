package create_feedback

import (
	"time"

	createFeedback "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_feedback"
)

// CreateFeedbackRequest HTTP request model
type CreateFeedbackRequest struct {
	BookingID int64   `json:"bookingId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// FeedbackResponse HTTP response model
type FeedbackResponse struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"bookingId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createFeedback.Response) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        resp.ID,
		BookingID: resp.BookingID,
		Rating:    resp.Rating,
		Comment:   resp.Comment,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
