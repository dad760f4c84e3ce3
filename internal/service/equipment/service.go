package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	equipmentRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/equipment"
	"github.com/fabworks/FabLab-BookingService/internal/service/equipment/models"
)

// Service сервис для работы с каталогом оборудования
type Service struct {
	equipmentRepo EquipmentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса оборудования
func NewService(equipmentRepo EquipmentRepository, logger Logger) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// Create создает запись оборудования (действие администратора)
// Не указанные вместимость и длительность бронирования получают значения
// по умолчанию, пустой статус трактуется как operational
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("Create: creating equipment name=%q category=%q", req.Name, req.Category)

	e := req.ToDomainEquipment()
	if err := s.applyDefaults(e); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.equipmentRepo.Create(ctx, e)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: equipment created id=%d", created.ID)
	return models.FromDomainEquipment(created), nil
}

// List получает каталог оборудования, сначала новое
func (s *Service) List(ctx context.Context) ([]*models.EquipmentResponse, error) {
	s.logger.Info("List: fetching equipment catalog")

	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d equipment items", len(items))
	return models.FromDomainEquipmentList(items), nil
}

// GetByID получает карточку оборудования по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	s.logger.Info("GetByID: fetching equipment id=%d", id)

	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("GetByID: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEquipment(e), nil
}

// applyDefaults валидирует обязательные поля и подставляет значения
// по умолчанию
func (s *Service) applyDefaults(e *domain.Equipment) error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if e.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if e.Capacity <= 0 {
		e.Capacity = domain.DefaultCapacity
	}
	if e.BookingMinutes <= 0 {
		e.BookingMinutes = domain.DefaultBookingMinutes
	}

	if e.Status == "" {
		e.Status = domain.EquipmentOperational
	}
	if !domain.ValidEquipmentStatus(e.Status) {
		return fmt.Errorf("%w: invalid equipment status %q", ErrInvalidInput, e.Status)
	}

	return nil
}
