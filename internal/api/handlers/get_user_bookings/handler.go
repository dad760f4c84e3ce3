package get_user_bookings

import (
	"net/http"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
	"github.com/fabworks/FabLab-BookingService/internal/api/middleware"
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

// Handle GET /api/v1/bookings/my
// История бронирований аутентифицированного пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /bookings/my - Failed to get bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/my - Listed %d bookings for user_id=%d", len(result), userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
