package check_availability

import (
	"context"
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetConfirmedByEquipmentAndDate получает подтвержденные бронирования оборудования на дату
	GetConfirmedByEquipmentAndDate(ctx context.Context, equipmentID int64, date time.Time) ([]*domain.Booking, error)
}

// SuggestionSearcher интерфейс поиска альтернативных слотов
type SuggestionSearcher interface {
	FindSlots(ctx context.Context, equipmentID int64, date time.Time, startTime types.TimeString, durationMinutes int) ([]schedule.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
