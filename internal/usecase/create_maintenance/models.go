package create_maintenance

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
)

// Request модель запроса на создание окна обслуживания
// Для corrective-типа Start и End игнорируются: окно открывается немедленно
type Request struct {
	EquipmentID int64                  // ID оборудования
	Type        domain.MaintenanceType // Тип обслуживания
	Start       *time.Time             // Начало окна (обязательно для планируемых типов)
	End         *time.Time             // Конец окна (обязательно для планируемых типов)
	Assignee    string                 // Исполнитель
	Notes       string                 // Примечания
}

// Response модель ответа с созданным окном обслуживания
type Response struct {
	ID          int64
	EquipmentID int64
	Type        domain.MaintenanceType
	Status      domain.MaintenanceStatus
	Start       *time.Time
	End         *time.Time

	CreatedAt time.Time
}
