package create_booking

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID аутентифицированного пользователя
	EquipmentID     int64            // ID оборудования
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность в минутах
	Purpose         string           // Цель использования (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	EquipmentID     int64            // ID оборудования
	UserID          int64            // ID пользователя
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Вычисленное время окончания
	DurationMinutes int              // Длительность в минутах
	Purpose         string           // Цель использования
	Status          string           // Статус бронирования (pending до подтверждения)

	CreatedAt time.Time // Время создания
}
