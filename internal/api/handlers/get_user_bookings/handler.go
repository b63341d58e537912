package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-BookingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-BookingGateway/internal/service/bookings"
)

const (
	msgAccessDenied  = "доступ запрещен"
	msgInvalidStatus = "некорректный статус в фильтре"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	statusFilter := r.URL.Query().Get("status")

	list, err := h.service.GetUserBookings(r.Context(), userID, statusFilter)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: user_id=%d, count=%d", userID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(list))
}
