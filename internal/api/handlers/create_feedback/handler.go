package create_feedback

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-BookingGateway/internal/api/middleware"
	createFeedback "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_feedback"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgCommentTooLong     = "комментарий слишком длинный"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "доступ запрещен"
	msgNotCompleted       = "отзыв можно оставить только на завершенное бронирование"
	msgFeedbackExists     = "отзыв на это бронирование уже оставлен"
)

type Handler struct {
	useCase CreateFeedbackUseCase
	logger  Logger
}

func NewHandler(useCase CreateFeedbackUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/feedbacks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req CreateFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /feedbacks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createFeedback.Request{
		UserID:    userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, createFeedback.ErrInvalidRating):
			h.logger.Warn("POST /feedbacks - Invalid rating=%d: booking_id=%d", req.Rating, req.BookingID)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, createFeedback.ErrCommentTooLong):
			h.logger.Warn("POST /feedbacks - Comment too long: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgCommentTooLong)

		case errors.Is(err, createFeedback.ErrBookingNotFound):
			h.logger.Warn("POST /feedbacks - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createFeedback.ErrAccessDenied):
			h.logger.Warn("POST /feedbacks - Access denied: user_id=%d, booking_id=%d", userID, req.BookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createFeedback.ErrNotCompleted):
			h.logger.Warn("POST /feedbacks - Booking not completed: booking_id=%d: %v", req.BookingID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotCompleted)

		case errors.Is(err, createFeedback.ErrFeedbackExists):
			h.logger.Warn("POST /feedbacks - Feedback already exists: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgFeedbackExists)

		default:
			h.logger.Error("POST /feedbacks - Failed to create feedback: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /feedbacks - Feedback created: feedback_id=%d, booking_id=%d, user_id=%d",
		result.ID, req.BookingID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
