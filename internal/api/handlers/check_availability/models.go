package check_availability

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	checkAvailability "github.com/fabworks/FabLab-BookingService/internal/usecase/check_availability"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	EquipmentID     int64  `json:"equipmentId"`
	Date            string `json:"date"` // "2026-09-15"
	StartTime       string `json:"time"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// SuggestedSlot свободный слот-альтернатива
type SuggestedSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"time"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available      bool            `json:"available"`
	SuggestedSlots []SuggestedSlot `json:"suggestedSlots,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		EquipmentID:     r.EquipmentID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{Available: resp.Available}
	for _, slot := range resp.SuggestedSlots {
		out.SuggestedSlots = append(out.SuggestedSlots, SuggestedSlot{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.Time.String(),
		})
	}
	return out
}
