package update_maintenance

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
	msgInvalidInput        = "некорректные параметры запроса"
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

// Handle PATCH /api/v1/maintenance/{id}
// Административное обновление учетных полей окна обслуживания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	windowID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /maintenance/{id} - Invalid maintenance ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /maintenance/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateDetails(r.Context(), windowID, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, maintenance.ErrMaintenanceNotFound):
			h.logger.Warn("PATCH /maintenance/{id} - Maintenance not found: maintenance_id=%d", windowID)
			handlers.RespondNotFound(w, msgMaintenanceNotFound)

		case errors.Is(err, maintenance.ErrInvalidStatus):
			h.logger.Warn("PATCH /maintenance/{id} - Invalid status: maintenance_id=%d", windowID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("PATCH /maintenance/{id} - Invalid input: maintenance_id=%d, error=%v", windowID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /maintenance/{id} - Failed to update maintenance: maintenance_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /maintenance/{id} - Maintenance updated: maintenance_id=%d", windowID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
