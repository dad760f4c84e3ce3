package list_confirmed_bookings

import (
	"context"

	"github.com/fabworks/FabLab-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	ListConfirmed(ctx context.Context) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
