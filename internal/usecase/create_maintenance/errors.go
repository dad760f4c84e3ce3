package create_maintenance

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("create_maintenance: equipment not found")

	// ErrMaintenanceOverlap возвращается при пересечении с существующим окном обслуживания
	ErrMaintenanceOverlap = errors.New("create_maintenance: overlaps with existing maintenance window")

	// ErrBookingOverlap возвращается при пересечении с подтвержденными бронированиями
	ErrBookingOverlap = errors.New("create_maintenance: overlaps with confirmed bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_maintenance: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_maintenance: internal error")
)
