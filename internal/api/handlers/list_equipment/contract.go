package list_equipment

import (
	"context"

	"github.com/fabworks/FabLab-BookingService/internal/service/equipment/models"
)

type EquipmentService interface {
	List(ctx context.Context) ([]*models.EquipmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
