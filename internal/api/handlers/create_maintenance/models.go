package create_maintenance

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	createMaintenance "github.com/fabworks/FabLab-BookingService/internal/usecase/create_maintenance"
)

// CreateMaintenanceRequest HTTP request model
// Для типа corrective окна start/end не требуются: обслуживание начинается
// немедленно и длится до явного завершения
type CreateMaintenanceRequest struct {
	EquipmentID int64   `json:"equipmentId"`
	Type        string  `json:"type"`            // preventive/corrective/calibration/upgrade/inspection
	Start       *string `json:"start,omitempty"` // RFC3339
	End         *string `json:"end,omitempty"`   // RFC3339
	Assignee    string  `json:"assignee,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// MaintenanceResponse HTTP response model
type MaintenanceResponse struct {
	ID          int64   `json:"id"`
	EquipmentID int64   `json:"equipmentId"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Start       *string `json:"start,omitempty"`
	End         *string `json:"end,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateMaintenanceRequest) ToUseCaseRequest() (*createMaintenance.Request, error) {
	var start, end *time.Time

	if r.Start != nil {
		parsed, err := time.Parse(time.RFC3339, *r.Start)
		if err != nil {
			return nil, err
		}
		start = &parsed
	}
	if r.End != nil {
		parsed, err := time.Parse(time.RFC3339, *r.End)
		if err != nil {
			return nil, err
		}
		end = &parsed
	}

	return &createMaintenance.Request{
		EquipmentID: r.EquipmentID,
		Type:        domain.MaintenanceType(r.Type),
		Start:       start,
		End:         end,
		Assignee:    r.Assignee,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createMaintenance.Response) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:          resp.ID,
		EquipmentID: resp.EquipmentID,
		Type:        string(resp.Type),
		Status:      string(resp.Status),
		Start:       formatTime(resp.Start),
		End:         formatTime(resp.End),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
