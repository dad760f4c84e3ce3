package create_equipment

import (
	"context"

	"github.com/fabworks/FabLab-BookingService/internal/service/equipment/models"
)

type EquipmentService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.EquipmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
