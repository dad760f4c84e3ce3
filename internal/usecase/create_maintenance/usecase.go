package create_maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	equipmentRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/equipment"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/pkg/ptr"
)

// UseCase use case создания окна обслуживания
// Corrective-обслуживание стартует немедленно (start = now, статус in-progress,
// конец не задан до явного завершения); планируемые типы требуют start < end
// и не должны пересекаться ни с неотмененными окнами обслуживания, ни с
// подтвержденными бронированиями того же оборудования
type UseCase struct {
	maintenanceRepo MaintenanceRepository
	bookingRepo     BookingRepository
	equipmentRepo   EquipmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	maintenanceRepo MaintenanceRepository,
	bookingRepo BookingRepository,
	equipmentRepo EquipmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		maintenanceRepo: maintenanceRepo,
		bookingRepo:     bookingRepo,
		equipmentRepo:   equipmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания окна обслуживания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateMaintenance: equipment=%d, type=%s", req.EquipmentID, req.Type)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateMaintenance: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование оборудования
	if _, err := uc.equipmentRepo.GetByID(ctx, req.EquipmentID); err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			uc.logger.Warn("CreateMaintenance: equipment id=%d not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("CreateMaintenance: failed to get equipment id=%d: %v", req.EquipmentID, err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	// 3. Corrective-обслуживание: немедленный старт, минуя scheduled
	if req.Type == domain.MaintenanceCorrective {
		return uc.createCorrective(ctx, req)
	}

	// 4. Планируемые типы: проверяем пересечения
	candidate := schedule.Interval{Start: *req.Start, End: *req.End}

	// 4.1. Пересечение с неотмененными окнами обслуживания
	windows, err := uc.maintenanceRepo.GetNonCancelledWindows(ctx, req.EquipmentID)
	if err != nil {
		uc.logger.Error("CreateMaintenance: failed to get maintenance windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get maintenance windows: %v", ErrInternal, err)
	}
	if schedule.ConflictsWithWindows(candidate, windows) {
		uc.logger.Warn("CreateMaintenance: window overlaps existing maintenance for equipment=%d", req.EquipmentID)
		return nil, ErrMaintenanceOverlap
	}

	// 4.2. Пересечение с подтвержденными бронированиями
	confirmed := domain.StatusConfirmed
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		EquipmentID: ptr.Ptr(req.EquipmentID),
		Status:      &confirmed,
	})
	if err != nil {
		uc.logger.Error("CreateMaintenance: failed to get confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get confirmed bookings: %v", ErrInternal, err)
	}
	if schedule.ConflictsWithBookings(candidate, bookings) {
		uc.logger.Warn("CreateMaintenance: window overlaps confirmed bookings for equipment=%d", req.EquipmentID)
		return nil, ErrBookingOverlap
	}

	// 5. Создаем окно в статусе scheduled - планировщик переведет его
	// в in-progress, когда придет время начала
	window := &domain.MaintenanceWindow{
		EquipmentID: req.EquipmentID,
		Type:        req.Type,
		Start:       req.Start,
		End:         req.End,
		Status:      domain.MaintenanceScheduled,
		Assignee:    req.Assignee,
		Notes:       req.Notes,
	}

	created, err := uc.maintenanceRepo.Create(ctx, window)
	if err != nil {
		uc.logger.Error("CreateMaintenance: failed to create window: %v", err)
		return nil, fmt.Errorf("%w: failed to create window: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateMaintenance: scheduled window id=%d for equipment=%d", created.ID, created.EquipmentID)

	return toResponse(created), nil
}

// createCorrective создает corrective-окно: in-progress прямо сейчас,
// оборудование немедленно уходит в maintenance, не дожидаясь тика планировщика
func (uc *UseCase) createCorrective(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	window := &domain.MaintenanceWindow{
		EquipmentID: req.EquipmentID,
		Type:        domain.MaintenanceCorrective,
		Start:       &now,
		Status:      domain.MaintenanceInProgress,
		Assignee:    req.Assignee,
		Notes:       req.Notes,
	}

	created, err := uc.maintenanceRepo.Create(ctx, window)
	if err != nil {
		uc.logger.Error("CreateMaintenance: failed to create corrective window: %v", err)
		return nil, fmt.Errorf("%w: failed to create corrective window: %v", ErrInternal, err)
	}

	if err := uc.equipmentRepo.SetStatus(ctx, req.EquipmentID, domain.EquipmentMaintenance); err != nil {
		uc.logger.Error("CreateMaintenance: failed to set equipment status: %v", err)
		return nil, fmt.Errorf("%w: failed to set equipment status: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateMaintenance: corrective window id=%d started for equipment=%d",
		created.ID, created.EquipmentID)

	return toResponse(created), nil
}

// toResponse конвертирует окно обслуживания в response
func toResponse(m *domain.MaintenanceWindow) *Response {
	return &Response{
		ID:          m.ID,
		EquipmentID: m.EquipmentID,
		Type:        m.Type,
		Status:      m.Status,
		Start:       m.Start,
		End:         m.End,
		CreatedAt:   m.CreatedAt,
	}
}
