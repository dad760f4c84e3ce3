package create_maintenance

import (
	"errors"
	"net/http"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
	createMaintenance "github.com/fabworks/FabLab-BookingService/internal/usecase/create_maintenance"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInput       = "некорректные параметры запроса"
	msgEquipmentNotFound  = "оборудование не найдено"
	msgMaintenanceOverlap = "окно пересекается с другим обслуживанием"
	msgBookingOverlap     = "окно пересекается с подтвержденным бронированием"
)

type Handler struct {
	useCase CreateMaintenanceUseCase
	logger  Logger
}

func NewHandler(useCase CreateMaintenanceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/maintenance
// Административное создание окна обслуживания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /maintenance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /maintenance - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createMaintenance.ErrEquipmentNotFound):
			h.logger.Warn("POST /maintenance - Equipment not found: equipment_id=%d", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createMaintenance.ErrMaintenanceOverlap):
			h.logger.Warn("POST /maintenance - Maintenance overlap: equipment_id=%d", req.EquipmentID)
			handlers.RespondError(w, http.StatusConflict, msgMaintenanceOverlap)

		case errors.Is(err, createMaintenance.ErrBookingOverlap):
			h.logger.Warn("POST /maintenance - Booking overlap: equipment_id=%d", req.EquipmentID)
			handlers.RespondError(w, http.StatusConflict, msgBookingOverlap)

		case errors.Is(err, createMaintenance.ErrInvalidInput):
			h.logger.Warn("POST /maintenance - Invalid input: equipment_id=%d, error=%v", req.EquipmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /maintenance - Failed to create maintenance: equipment_id=%d, error=%v",
				req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /maintenance - Maintenance created: maintenance_id=%d, equipment_id=%d, type=%s",
		result.ID, req.EquipmentID, req.Type)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
