package booking_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-BookingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/internal/integrations/discountapi"
	"github.com/m04kA/SMC-BookingGateway/internal/service/session"
	createBooking "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgAccessDenied       = "доступ запрещен"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidQuantity    = "количество должно быть от 1 до 10"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgEmptyCouponCode    = "код купона не может быть пустым"
	msgCouponInFlight     = "валидация купона уже выполняется"
	msgSlotNotChosen      = "дата и время бронирования не выбраны"
	msgSlotInPast         = "выбранный слот уже прошел"
	msgSlotTaken          = "выбранный слот уже занят, выберите другое время"
	msgNotesTooLong       = "заметки слишком длинные"
)

// Handler обработчики формы бронирования (booking-сессии)
type Handler struct {
	sessions SessionService
	creator  CreateBookingUseCase
	logger   Logger
}

func NewHandler(sessions SessionService, creator CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		creator:  creator,
		logger:   logger,
	}
}

// HandleStart POST /api/v1/sessions
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.sessions.Start(r.Context(), userID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrServiceNotFound):
			h.logger.Warn("POST /sessions - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("POST /sessions - Failed to start session: user_id=%d, service_id=%d, error=%v",
				userID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session started: session_id=%s, user_id=%d", view.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromSessionView(view))
}

// HandleGet GET /api/v1/sessions/{sessionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	view, err := h.sessions.Get(sessionID, userID)
	if err != nil {
		h.respondSessionError(w, "GET /sessions/{id}", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// HandleSetQuantity PUT /api/v1/sessions/{sessionId}/quantity
func (h *Handler) HandleSetQuantity(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/quantity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.sessions.SetQuantity(sessionID, userID, req.Quantity)
	if err != nil {
		if errors.Is(err, session.ErrInvalidQuantity) {
			h.logger.Warn("PUT /sessions/{id}/quantity - Invalid quantity=%d: session_id=%s", req.Quantity, sessionID)
			handlers.RespondBadRequest(w, msgInvalidQuantity)
			return
		}
		h.respondSessionError(w, "PUT /sessions/{id}/quantity", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// HandleSelectSlot PUT /api/v1/sessions/{sessionId}/slot
func (h *Handler) HandleSelectSlot(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/slot - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/slot - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	view, err := h.sessions.SelectSlot(sessionID, userID, date, slot)
	if err != nil {
		if errors.Is(err, session.ErrInvalidSlot) {
			h.logger.Warn("PUT /sessions/{id}/slot - Invalid slot: session_id=%s: %v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		h.respondSessionError(w, "PUT /sessions/{id}/slot", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// HandleApplyCoupon POST /api/v1/sessions/{sessionId}/coupon
func (h *Handler) HandleApplyCoupon(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req ApplyCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/coupon - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.sessions.ApplyCoupon(r.Context(), sessionID, userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyCouponCode):
			h.logger.Warn("POST /sessions/{id}/coupon - Empty coupon code: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCouponCode)

		case errors.Is(err, session.ErrCouponRequestInFlight):
			h.logger.Warn("POST /sessions/{id}/coupon - Validation already in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgCouponInFlight)

		default:
			if invalid, ok := discountapi.IsCouponInvalid(err); ok {
				h.logger.Warn("POST /sessions/{id}/coupon - Coupon rejected: session_id=%s: %s",
					sessionID, invalid.Reason)
				handlers.RespondError(w, http.StatusUnprocessableEntity, invalid.Reason)
				return
			}
			h.respondSessionError(w, "POST /sessions/{id}/coupon", sessionID, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// HandleRemoveCoupon DELETE /api/v1/sessions/{sessionId}/coupon
func (h *Handler) HandleRemoveCoupon(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	view, err := h.sessions.RemoveCoupon(sessionID, userID)
	if err != nil {
		h.respondSessionError(w, "DELETE /sessions/{id}/coupon", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// HandleSubmit POST /api/v1/sessions/{sessionId}/submit
// Создает бронирование из собранной формы; при успехе сессия закрывается
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snapshot, err := h.sessions.Snapshot(sessionID, userID)
	if err != nil {
		h.respondSessionError(w, "POST /sessions/{id}/submit", sessionID, err)
		return
	}

	result, err := h.creator.Execute(r.Context(), &createBooking.Request{
		UserID:    userID,
		ServiceID: snapshot.ServiceID,
		UnitPrice: snapshot.UnitPrice,
		Quantity:  snapshot.Quantity,
		Date:      snapshot.Date,
		Slot:      snapshot.Slot,
		Notes:     req.Notes,
		Discount:  snapshot.Discount,
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /sessions/{id}/submit - Slot taken: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrSlotNotChosen):
			h.logger.Warn("POST /sessions/{id}/submit - Slot not chosen: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgSlotNotChosen)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /sessions/{id}/submit - Slot in past: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidQuantity):
			h.logger.Warn("POST /sessions/{id}/submit - Invalid quantity: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, createBooking.ErrNotesTooLong):
			h.logger.Warn("POST /sessions/{id}/submit - Notes too long: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNotesTooLong)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Service not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrRejected):
			h.logger.Warn("POST /sessions/{id}/submit - Rejected by booking API: session_id=%s: %v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, err.Error())

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to create booking: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Форма выполнила свою задачу: сессия больше не нужна
	if err := h.sessions.Close(sessionID, userID); err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Failed to close session %s: %v", sessionID, err)
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking created: booking_id=%d, session_id=%s, user_id=%d",
		result.ID, sessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// identify извлекает userID из контекста и sessionID из URL
func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return 0, "", false
	}

	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		handlers.RespondBadRequest(w, msgSessionNotFound)
		return 0, "", false
	}

	return userID, sessionID, true
}

// respondSessionError обрабатывает общие ошибки сервиса сессий
func (h *Handler) respondSessionError(w http.ResponseWriter, op string, sessionID string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, session.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: session_id=%s", op, sessionID)
		handlers.RespondForbidden(w, msgAccessDenied)

	default:
		h.logger.Error("%s - Unexpected error: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
