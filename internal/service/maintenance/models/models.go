package models

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
)

// MaintenanceResponse модель окна обслуживания для внешних потребителей
type MaintenanceResponse struct {
	ID              int64
	EquipmentID     int64
	Type            string
	Status          string
	Start           *time.Time
	End             *time.Time
	Assignee        string
	Notes           string
	DurationMinutes int
	Cost            float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UpdateDetailsRequest запрос на обновление учетных полей обслуживания
// Обновляются только переданные (не-nil) поля
type UpdateDetailsRequest struct {
	DurationMinutes         *int
	Cost                    *float64
	Notes                   *string
	Status                  *string
	SetEquipmentOperational bool // Принудительно вернуть оборудование в operational
}

// FromDomainWindow конвертирует доменное окно обслуживания в response
func FromDomainWindow(m *domain.MaintenanceWindow) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:              m.ID,
		EquipmentID:     m.EquipmentID,
		Type:            string(m.Type),
		Status:          string(m.Status),
		Start:           m.Start,
		End:             m.End,
		Assignee:        m.Assignee,
		Notes:           m.Notes,
		DurationMinutes: m.DurationMinutes,
		Cost:            m.Cost,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список доменных окон обслуживания
func FromDomainWindowList(items []*domain.MaintenanceWindow) []*MaintenanceResponse {
	result := make([]*MaintenanceResponse, len(items))
	for i, m := range items {
		result[i] = FromDomainWindow(m)
	}
	return result
}

// ToDomainMaintenanceStatus валидирует и конвертирует строковый статус
func ToDomainMaintenanceStatus(s string) (domain.MaintenanceStatus, bool) {
	status := domain.MaintenanceStatus(s)
	return status, domain.ValidMaintenanceStatus(status)
}
