package list_confirmed_bookings

import (
	"net/http"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/bookings/confirmed
// Публичное расписание занятости оборудования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListConfirmed(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/confirmed - Failed to list confirmed bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/confirmed - Listed %d bookings", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
