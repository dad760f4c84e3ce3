package create_booking

import (
	"errors"
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/schedule"
)

var (
	// ErrUnauthorized возвращается при отсутствии аутентифицированного пользователя
	ErrUnauthorized = errors.New("create_booking: unauthorized")

	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("create_booking: equipment not found")

	// ErrSlotConflict возвращается, когда слот пересекается с подтвержденным бронированием
	ErrSlotConflict = errors.New("create_booking: time slot conflicts with existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotConflictError ошибка конфликта слота с предложенными альтернативами
// Разворачивается в ErrSlotConflict, чтобы handler мог проверить тип через
// errors.Is и достать слоты через errors.As
type SlotConflictError struct {
	SuggestedSlots []schedule.Slot
}

// Error реализует интерфейс error
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v (%d suggestions)", ErrSlotConflict, len(e.SuggestedSlots))
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
