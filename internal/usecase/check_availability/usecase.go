package check_availability

import (
	"context"
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
)

// UseCase use case проверки доступности слота бронирования
// Проверка чисто информационная и подвержена гонке by design: между проверкой
// и созданием бронирования слот может занять другой пользователь, поэтому
// путь создания перепроверяет конфликт самостоятельно
type UseCase struct {
	bookingRepo BookingRepository
	searcher    SuggestionSearcher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	searcher SuggestionSearcher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		searcher:    searcher,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности слота
// Никогда не мутирует состояние
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: equipment=%d, date=%s, time=%s, duration=%d",
		req.EquipmentID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим запрошенный интервал
	candidate, err := schedule.NewInterval(req.Date, req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CheckAvailability: failed to build interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Получаем подтвержденные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetConfirmedByEquipmentAndDate(ctx, req.EquipmentID, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Проверяем конфликт
	if !schedule.ConflictsWithBookings(candidate, bookings) {
		uc.logger.Info("CheckAvailability: slot is available for equipment=%d", req.EquipmentID)
		return &Response{Available: true}, nil
	}

	// 5. Слот занят - ищем альтернативы
	suggestions, err := uc.searcher.FindSlots(ctx, req.EquipmentID, req.Date, req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("CheckAvailability: suggestion search failed: %v", err)
		return nil, fmt.Errorf("%w: suggestion search failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: slot conflicts for equipment=%d, %d suggestions found",
		req.EquipmentID, len(suggestions))

	return &Response{
		Available:      false,
		SuggestedSlots: suggestions,
	}, nil
}
