package create_booking

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	createBooking "github.com/fabworks/FabLab-BookingService/internal/usecase/create_booking"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
// Идентификатор пользователя берется из контекста аутентификации, не из тела
type CreateBookingRequest struct {
	EquipmentID     int64  `json:"equipmentId"`
	Date            string `json:"date"` // "2026-09-15"
	StartTime       string `json:"time"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Purpose         string `json:"purpose,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	EquipmentID     int64  `json:"equipmentId"`
	UserID          int64  `json:"userId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Purpose         string `json:"purpose,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// SuggestedSlot свободный слот-альтернатива
type SuggestedSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"time"`
}

// ConflictResponse тело ответа 409: слот занят, предложены альтернативы
type ConflictResponse struct {
	Error          string          `json:"error"`
	SuggestedSlots []SuggestedSlot `json:"suggestedSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		EquipmentID:     r.EquipmentID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Purpose:         r.Purpose,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		EquipmentID:     resp.EquipmentID,
		UserID:          resp.UserID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Purpose:         resp.Purpose,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromSuggestedSlots конвертирует предложенные слоты в HTTP-модель
func FromSuggestedSlots(slots []schedule.Slot) []SuggestedSlot {
	result := make([]SuggestedSlot, len(slots))
	for i, slot := range slots {
		result[i] = SuggestedSlot{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.Time.String(),
		}
	}
	return result
}
