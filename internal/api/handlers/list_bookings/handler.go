package list_bookings

import (
	"errors"
	"net/http"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
	"github.com/fabworks/FabLab-BookingService/internal/service/bookings"
)

const msgInvalidStatus = "некорректный статус бронирования"

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

// Handle GET /api/v1/bookings
// Административная выборка всех бронирований, опциональный фильтр ?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
