package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-BookingGateway/internal/api/middleware"
	cancelBooking "github.com/m04kA/SMC-BookingGateway/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgEmptyReason        = "причина отмены обязательна"
	msgReasonTooLong      = "причина отмены слишком длинная"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "доступ запрещен"
	msgCannotCancel       = "бронирование нельзя отменить в текущем статусе"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	bookingIDStr := mux.Vars(r)["bookingId"]
	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrEmptyCancelReason):
			h.logger.Warn("PUT /bookings/{id}/cancel - Empty cancel reason: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgEmptyReason)

		case errors.Is(err, cancelBooking.ErrReasonTooLong):
			h.logger.Warn("PUT /bookings/{id}/cancel - Reason too long: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/cancel - Access denied: user_id=%d, booking_id=%d", userID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelBooking.ErrCannotCancel):
			h.logger.Warn("PUT /bookings/{id}/cancel - Cannot cancel: booking_id=%d: %v", bookingID, err)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PUT /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
