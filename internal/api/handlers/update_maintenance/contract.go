package update_maintenance

import (
	"context"

	"github.com/fabworks/FabLab-BookingService/internal/service/maintenance/models"
)

type MaintenanceService interface {
	UpdateDetails(ctx context.Context, windowID int64, req *models.UpdateDetailsRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
