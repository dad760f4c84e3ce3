package scheduler

import (
	"context"
	"time"
)

// MaintenanceRepository интерфейс репозитория окон обслуживания
type MaintenanceRepository interface {
	// PromoteDueScheduled переводит созревшие scheduled-окна в in-progress
	// и возвращает ID затронутого оборудования
	PromoteDueScheduled(ctx context.Context, now time.Time) ([]int64, error)
	// EquipmentIDsInProgress возвращает ID оборудования с активным обслуживанием
	EquipmentIDsInProgress(ctx context.Context) ([]int64, error)
}

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	MarkMaintenance(ctx context.Context, ids []int64) error
	MarkOperationalExcept(ctx context.Context, inMaintenanceIDs []int64) error
}

// Metrics интерфейс метрик планировщика
type Metrics interface {
	IncTick()
	AddTransitions(transition string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopMetrics заглушка метрик, когда сбор метрик выключен
type NopMetrics struct{}

func (NopMetrics) IncTick()                       {}
func (NopMetrics) AddTransitions(_ string, _ int) {}
