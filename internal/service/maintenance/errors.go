package maintenance

import "errors"

var (
	// ErrMaintenanceNotFound возвращается, когда окно обслуживания не найдено
	ErrMaintenanceNotFound = errors.New("maintenance.service: maintenance window not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("maintenance.service: invalid maintenance status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("maintenance.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("maintenance.service: internal error")
)
