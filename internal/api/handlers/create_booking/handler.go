package create_booking

import (
	"errors"
	"net/http"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
	"github.com/fabworks/FabLab-BookingService/internal/api/middleware"
	createBooking "github.com/fabworks/FabLab-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные параметры запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgEquipmentNotFound  = "оборудование не найдено"
	msgSlotConflict       = "выбранный временной слот занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, equipment_id=%d, suggestions=%d",
				userID, req.EquipmentID, len(conflict.SuggestedSlots))
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:          msgSlotConflict,
				SuggestedSlots: FromSuggestedSlots(conflict.SuggestedSlots),
			})

		case errors.Is(err, createBooking.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Unauthorized request")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, createBooking.ErrEquipmentNotFound):
			h.logger.Warn("POST /bookings - Equipment not found: equipment_id=%d", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, equipment_id=%d, error=%v",
				userID, req.EquipmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, equipment_id=%d, error=%v",
				userID, req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, equipment_id=%d",
		result.ID, userID, req.EquipmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
