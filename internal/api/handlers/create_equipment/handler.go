package create_equipment

import (
	"errors"
	"net/http"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
	"github.com/fabworks/FabLab-BookingService/internal/service/equipment"
	"github.com/fabworks/FabLab-BookingService/internal/service/equipment/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры запроса"
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

// Handle POST /api/v1/equipment
// Административное создание карточки оборудования
// Модели запроса и ответа определены в сервисе: HTTP-слой не добавляет
// собственной конвертации поверх нормализации списочных полей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /equipment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrInvalidInput):
			h.logger.Warn("POST /equipment - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /equipment - Failed to create equipment: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /equipment - Equipment created: equipment_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
