package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	maintenanceRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/maintenance"
	"github.com/fabworks/FabLab-BookingService/internal/service/maintenance/models"
)

// Service сервис для работы с окнами обслуживания
type Service struct {
	maintenanceRepo MaintenanceRepository
	equipmentRepo   EquipmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса обслуживания
func NewService(
	maintenanceRepo MaintenanceRepository,
	equipmentRepo EquipmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// ListByEquipment получает историю обслуживания оборудования, сначала новые
func (s *Service) ListByEquipment(ctx context.Context, equipmentID int64) ([]*models.MaintenanceResponse, error) {
	s.logger.Info("ListByEquipment: fetching maintenance for equipment=%d", equipmentID)

	items, err := s.maintenanceRepo.GetByEquipment(ctx, equipmentID)
	if err != nil {
		s.logger.Error("ListByEquipment: repository error for equipment=%d: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: ListByEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEquipment: successfully fetched %d windows for equipment=%d", len(items), equipmentID)
	return models.FromDomainWindowList(items), nil
}

// UpdateStatus обновляет статус окна обслуживания (действие администратора)
// Перевод в completed фиксирует фактическое время окончания
// Статус оборудования синхронизируется: in-progress переводит его в
// maintenance, любой другой статус возвращает в operational, если у
// оборудования не осталось других активных окон
func (s *Service) UpdateStatus(ctx context.Context, windowID int64, status string) error {
	s.logger.Info("UpdateStatus: updating maintenance id=%d to status=%s", windowID, status)

	newStatus, ok := models.ToDomainMaintenanceStatus(status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status %q for maintenance id=%d", status, windowID)
		return ErrInvalidStatus
	}

	window, err := s.maintenanceRepo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, maintenanceRepo.ErrMaintenanceNotFound) {
			s.logger.Warn("UpdateStatus: maintenance id=%d not found", windowID)
			return ErrMaintenanceNotFound
		}
		s.logger.Error("UpdateStatus: repository error for maintenance id=%d: %v", windowID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if err := s.maintenanceRepo.UpdateStatus(ctx, windowID, newStatus, now); err != nil {
		if errors.Is(err, maintenanceRepo.ErrMaintenanceNotFound) {
			return ErrMaintenanceNotFound
		}
		s.logger.Error("UpdateStatus: repository error for maintenance id=%d: %v", windowID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.syncEquipmentStatus(ctx, window.EquipmentID, newStatus); err != nil {
		return err
	}

	s.logger.Info("UpdateStatus: maintenance id=%d updated to status=%s", windowID, newStatus)
	return nil
}

// UpdateDetails обновляет учетные поля окна обслуживания (действие администратора)
// Обновляются только переданные поля; опционально переводит оборудование
// обратно в operational
func (s *Service) UpdateDetails(ctx context.Context, windowID int64, req *models.UpdateDetailsRequest) error {
	s.logger.Info("UpdateDetails: updating maintenance id=%d", windowID)

	upd, err := s.buildDetailsUpdate(req)
	if err != nil {
		return err
	}

	window, err := s.maintenanceRepo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, maintenanceRepo.ErrMaintenanceNotFound) {
			s.logger.Warn("UpdateDetails: maintenance id=%d not found", windowID)
			return ErrMaintenanceNotFound
		}
		s.logger.Error("UpdateDetails: repository error for maintenance id=%d: %v", windowID, err)
		return fmt.Errorf("%w: UpdateDetails - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if err := s.maintenanceRepo.UpdateDetails(ctx, windowID, upd, now); err != nil {
		if errors.Is(err, maintenanceRepo.ErrMaintenanceNotFound) {
			return ErrMaintenanceNotFound
		}
		s.logger.Error("UpdateDetails: repository error for maintenance id=%d: %v", windowID, err)
		return fmt.Errorf("%w: UpdateDetails - repository error: %v", ErrInternal, err)
	}

	if upd.Status != nil {
		if err := s.syncEquipmentStatus(ctx, window.EquipmentID, *upd.Status); err != nil {
			return err
		}
	}

	if req.SetEquipmentOperational {
		if err := s.equipmentRepo.SetStatus(ctx, window.EquipmentID, domain.EquipmentOperational); err != nil {
			s.logger.Error("UpdateDetails: failed to set equipment=%d operational: %v", window.EquipmentID, err)
			return fmt.Errorf("%w: UpdateDetails - set equipment status: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateDetails: maintenance id=%d updated", windowID)
	return nil
}

// buildDetailsUpdate валидирует запрос и собирает набор обновляемых полей
func (s *Service) buildDetailsUpdate(req *models.UpdateDetailsRequest) (maintenanceRepo.DetailsUpdate, error) {
	var upd maintenanceRepo.DetailsUpdate

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 0 {
			return upd, fmt.Errorf("%w: duration minutes must not be negative", ErrInvalidInput)
		}
		upd.DurationMinutes = req.DurationMinutes
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return upd, fmt.Errorf("%w: cost must not be negative", ErrInvalidInput)
		}
		upd.Cost = req.Cost
	}
	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return upd, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
		}
		upd.Notes = req.Notes
	}
	if req.Status != nil {
		status, ok := models.ToDomainMaintenanceStatus(*req.Status)
		if !ok {
			return upd, ErrInvalidStatus
		}
		upd.Status = &status
	}

	return upd, nil
}

// syncEquipmentStatus приводит статус оборудования в соответствие статусу
// окна: in-progress означает maintenance, иначе оборудование возвращается
// в operational только когда активных окон больше не осталось
func (s *Service) syncEquipmentStatus(ctx context.Context, equipmentID int64, status domain.MaintenanceStatus) error {
	if status == domain.MaintenanceInProgress {
		if err := s.equipmentRepo.SetStatus(ctx, equipmentID, domain.EquipmentMaintenance); err != nil {
			s.logger.Error("syncEquipmentStatus: failed to set equipment=%d maintenance: %v", equipmentID, err)
			return fmt.Errorf("%w: failed to set equipment status: %v", ErrInternal, err)
		}
		return nil
	}

	hasInProgress, err := s.maintenanceRepo.HasInProgressForEquipment(ctx, equipmentID)
	if err != nil {
		s.logger.Error("syncEquipmentStatus: failed to check in-progress windows for equipment=%d: %v", equipmentID, err)
		return fmt.Errorf("%w: failed to check in-progress windows: %v", ErrInternal, err)
	}

	if !hasInProgress {
		if err := s.equipmentRepo.SetStatus(ctx, equipmentID, domain.EquipmentOperational); err != nil {
			s.logger.Error("syncEquipmentStatus: failed to set equipment=%d operational: %v", equipmentID, err)
			return fmt.Errorf("%w: failed to set equipment status: %v", ErrInternal, err)
		}
	}

	return nil
}
