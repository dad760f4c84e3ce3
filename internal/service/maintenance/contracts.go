package maintenance

import (
	"context"
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	maintenanceRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/maintenance"
)

// MaintenanceRepository интерфейс репозитория окон обслуживания
type MaintenanceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceWindow, error)
	GetByEquipment(ctx context.Context, equipmentID int64) ([]*domain.MaintenanceWindow, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MaintenanceStatus, now time.Time) error
	UpdateDetails(ctx context.Context, id int64, upd maintenanceRepo.DetailsUpdate, now time.Time) error
	HasInProgressForEquipment(ctx context.Context, equipmentID int64) (bool, error)
}

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	SetStatus(ctx context.Context, id int64, status domain.EquipmentStatus) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
