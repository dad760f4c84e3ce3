package update_maintenance_status

import "context"

type MaintenanceService interface {
	UpdateStatus(ctx context.Context, windowID int64, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
