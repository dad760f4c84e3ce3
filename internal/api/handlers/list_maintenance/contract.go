package list_maintenance

import (
	"context"

	"github.com/fabworks/FabLab-BookingService/internal/service/maintenance/models"
)

type MaintenanceService interface {
	ListByEquipment(ctx context.Context, equipmentID int64) ([]*models.MaintenanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
