package check_availability

import (
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и корректно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	// Нулевая или отрицательная длительность - ошибка входных данных,
	// а не "нет конфликта"
	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	// Слот не может переходить через полночь: AddMinutes заворачивает время,
	// поэтому конец не позже начала означает выход за границу суток
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if !endTime.IsAfter(req.StartTime) {
		return fmt.Errorf("%w: slot must end by 23:59", ErrInvalidInput)
	}

	return nil
}
