package update_maintenance

import "github.com/fabworks/FabLab-BookingService/internal/service/maintenance/models"

// UpdateMaintenanceRequest HTTP request model
// Обновляются только переданные поля
type UpdateMaintenanceRequest struct {
	DurationMinutes         *int     `json:"durationMinutes,omitempty"`
	Cost                    *float64 `json:"cost,omitempty"`
	Notes                   *string  `json:"notes,omitempty"`
	Status                  *string  `json:"status,omitempty"`
	SetEquipmentOperational bool     `json:"setEquipmentOperational,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateMaintenanceRequest) ToServiceRequest() *models.UpdateDetailsRequest {
	return &models.UpdateDetailsRequest{
		DurationMinutes:         r.DurationMinutes,
		Cost:                    r.Cost,
		Notes:                   r.Notes,
		Status:                  r.Status,
		SetEquipmentOperational: r.SetEquipmentOperational,
	}
}
