package create_maintenance

import (
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	if !domain.ValidMaintenanceType(req.Type) {
		return fmt.Errorf("%w: unknown maintenance type %q", ErrInvalidInput, req.Type)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Corrective стартует немедленно - границы окна не требуются
	if req.Type == domain.MaintenanceCorrective {
		return nil
	}

	// Планируемые типы требуют корректное окно [start, end)
	if req.Start == nil || req.End == nil {
		return fmt.Errorf("%w: start and end are required for scheduled maintenance", ErrInvalidInput)
	}
	if !req.End.After(*req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	return nil
}
