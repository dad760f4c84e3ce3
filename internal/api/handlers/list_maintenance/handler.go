package list_maintenance

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
)

const msgInvalidEquipmentID = "некорректный идентификатор оборудования"

type Handler struct {
	service MaintenanceService
	logger  Logger
}

func NewHandler(service MaintenanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/maintenance/{equipmentId}
// История обслуживания оборудования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /maintenance/{equipmentId} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	result, err := h.service.ListByEquipment(r.Context(), equipmentID)
	if err != nil {
		h.logger.Error("GET /maintenance/{equipmentId} - Failed to list maintenance: equipment_id=%d, error=%v",
			equipmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /maintenance/{equipmentId} - Listed %d windows for equipment_id=%d", len(result), equipmentID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
