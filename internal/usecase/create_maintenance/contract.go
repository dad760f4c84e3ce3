package create_maintenance

import (
	"context"
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
)

// MaintenanceRepository интерфейс репозитория окон обслуживания
type MaintenanceRepository interface {
	Create(ctx context.Context, window *domain.MaintenanceWindow) (*domain.MaintenanceWindow, error)
	GetNonCancelledWindows(ctx context.Context, equipmentID int64) ([]*domain.MaintenanceWindow, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// List используется для выборки всех подтвержденных бронирований оборудования
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
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
