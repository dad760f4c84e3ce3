package list_maintenance

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/service/maintenance/models"
)

// MaintenanceResponse HTTP response model
type MaintenanceResponse struct {
	ID              int64   `json:"id"`
	EquipmentID     int64   `json:"equipmentId"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Start           *string `json:"start,omitempty"`
	End             *string `json:"end,omitempty"`
	Assignee        string  `json:"assignee,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Cost            float64 `json:"cost"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ListMaintenanceResponse HTTP response model с историей обслуживания
type ListMaintenanceResponse struct {
	Maintenance []MaintenanceResponse `json:"maintenance"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(items []*models.MaintenanceResponse) *ListMaintenanceResponse {
	out := &ListMaintenanceResponse{Maintenance: make([]MaintenanceResponse, len(items))}
	for i, m := range items {
		out.Maintenance[i] = MaintenanceResponse{
			ID:              m.ID,
			EquipmentID:     m.EquipmentID,
			Type:            m.Type,
			Status:          m.Status,
			Start:           formatTime(m.Start),
			End:             formatTime(m.End),
			Assignee:        m.Assignee,
			Notes:           m.Notes,
			DurationMinutes: m.DurationMinutes,
			Cost:            m.Cost,
			CreatedAt:       m.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       m.UpdatedAt.Format(time.RFC3339),
		}
	}
	return out
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
