package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	equipmentRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/equipment"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
)

// UseCase use case создания бронирования
// Не доверяет предшествующей проверке доступности: конфликт перепроверяется
// на записи внутри сериализуемой транзакции, поскольку с момента проверки
// могли успеть записаться другие пользователи
type UseCase struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	searcher      SuggestionSearcher
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	equipmentRepo EquipmentRepository,
	searcher SuggestionSearcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		searcher:      searcher,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// При конфликте возвращает *SlotConflictError с тем же payload альтернативных
// слотов, что и проверка доступности, - клиенту не нужен второй запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, equipment=%d, date=%s, time=%s, duration=%d",
		req.UserID, req.EquipmentID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование оборудования
	if _, err := uc.equipmentRepo.GetByID(ctx, req.EquipmentID); err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			uc.logger.Warn("CreateBooking: equipment id=%d not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get equipment id=%d: %v", req.EquipmentID, err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	// 3. Строим запрошенный интервал и вычисляем время окончания
	candidate, err := schedule.NewInterval(req.Date, req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to build interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 4. Перепроверка конфликта и запись в сериализуемой транзакции
	// (выборка подтвержденных бронирований берет FOR UPDATE)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetConfirmedByEquipmentAndDate(txCtx, req.EquipmentID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if schedule.ConflictsWithBookings(candidate, bookings) {
			return ErrSlotConflict
		}

		// Бронирование создается в статусе pending - блокировать чужие проверки
		// доступности оно начнет только после подтверждения администратором
		booking := &domain.Booking{
			EquipmentID:     req.EquipmentID,
			UserID:          req.UserID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: req.DurationMinutes,
			Purpose:         req.Purpose,
			Status:          domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// На конфликт отвечаем теми же альтернативами, что и проверка доступности
		if errors.Is(err, ErrSlotConflict) {
			suggestions, sErr := uc.searcher.FindSlots(ctx, req.EquipmentID, req.Date, req.StartTime, req.DurationMinutes)
			if sErr != nil {
				uc.logger.Error("CreateBooking: suggestion search failed: %v", sErr)
				suggestions = nil
			}
			uc.logger.Warn("CreateBooking: slot conflict for user=%d, equipment=%d, %d suggestions",
				req.UserID, req.EquipmentID, len(suggestions))
			return nil, &SlotConflictError{SuggestedSlots: suggestions}
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d with status=%s", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		EquipmentID:     result.EquipmentID,
		UserID:          result.UserID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Purpose:         result.Purpose,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}
