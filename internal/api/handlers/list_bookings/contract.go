package list_bookings

import (
	"context"

	"github.com/fabworks/FabLab-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	List(ctx context.Context, status *string) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
