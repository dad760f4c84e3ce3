package check_availability

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// Request модель запроса на проверку доступности слота
type Request struct {
	EquipmentID     int64            // ID оборудования
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность в минутах
}

// Response модель ответа проверки доступности
// Если слот занят, SuggestedSlots содержит ближайшие свободные альтернативы
type Response struct {
	Available      bool
	SuggestedSlots []schedule.Slot
}
