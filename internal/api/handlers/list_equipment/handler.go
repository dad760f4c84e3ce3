package list_equipment

import (
	"net/http"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
	"github.com/fabworks/FabLab-BookingService/internal/service/equipment/models"
)

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListEquipmentResponse HTTP response model с каталогом оборудования
type ListEquipmentResponse struct {
	Equipment []*models.EquipmentResponse `json:"equipment"`
}

// Handle GET /api/v1/equipment
// Публичный каталог оборудования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /equipment - Listed %d equipment items", len(result))
	handlers.RespondJSON(w, http.StatusOK, ListEquipmentResponse{Equipment: result})
}
