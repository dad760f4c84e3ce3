package update_maintenance_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
	"github.com/fabworks/FabLab-BookingService/internal/service/maintenance"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidID           = "некорректный идентификатор окна обслуживания"
	msgInvalidStatus       = "некорректный статус обслуживания"
	msgMaintenanceNotFound = "окно обслуживания не найдено"
)

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

// Handle PATCH /api/v1/maintenance/{id}/status
// Административная смена статуса окна обслуживания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	windowID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/status - Invalid maintenance ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), windowID, req.Status); err != nil {
		switch {
		case errors.Is(err, maintenance.ErrMaintenanceNotFound):
			h.logger.Warn("PATCH /maintenance/{id}/status - Maintenance not found: maintenance_id=%d", windowID)
			handlers.RespondNotFound(w, msgMaintenanceNotFound)

		case errors.Is(err, maintenance.ErrInvalidStatus):
			h.logger.Warn("PATCH /maintenance/{id}/status - Invalid status %q: maintenance_id=%d", req.Status, windowID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /maintenance/{id}/status - Failed to update status: maintenance_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /maintenance/{id}/status - Maintenance status updated: maintenance_id=%d, status=%s",
		windowID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
