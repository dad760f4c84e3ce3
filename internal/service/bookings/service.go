package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	bookingRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/booking"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает все бронирования, опционально отфильтрованные по статусу
// Административная выборка
func (s *Service) List(ctx context.Context, status *string) ([]*models.BookingResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v", status)

	filter := domain.BookingsFilter{}
	if status != nil {
		domainStatus, ok := models.ToDomainBookingStatus(*status)
		if !ok {
			s.logger.Warn("List: invalid status filter %q", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &domainStatus
	}

	items, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(items))
	return models.FromDomainBookingList(items), nil
}

// ListConfirmed получает все подтвержденные бронирования в хронологическом
// порядке - публичное расписание занятости оборудования
func (s *Service) ListConfirmed(ctx context.Context) ([]*models.BookingResponse, error) {
	s.logger.Info("ListConfirmed: fetching confirmed bookings")

	confirmed := domain.StatusConfirmed
	items, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Status: &confirmed})
	if err != nil {
		s.logger.Error("ListConfirmed: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListConfirmed - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListConfirmed: successfully fetched %d bookings", len(items))
	return models.FromDomainBookingList(items), nil
}

// GetUserBookings получает историю бронирований пользователя, сначала новые
func (s *Service) GetUserBookings(ctx context.Context, userID int64) ([]*models.BookingResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	items, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(items), userID)
	return models.FromDomainBookingList(items), nil
}

// UpdateStatus обновляет статус бронирования (действие администратора)
// Перед переводом в confirmed перепроверяет конфликт с уже подтвержденными
// бронированиями того же оборудования: двухфазная схема допускает несколько
// пересекающихся pending-заявок, но подтвердить можно только одну
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, ok := models.ToDomainBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if newStatus == domain.StatusConfirmed && booking.Status != domain.StatusConfirmed {
		if err := s.checkConfirmConflict(ctx, booking); err != nil {
			return err
		}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return nil
}

// checkConfirmConflict проверяет, что подтверждение бронирования не создаст
// пересечения среди подтвержденных бронирований оборудования
func (s *Service) checkConfirmConflict(ctx context.Context, booking *domain.Booking) error {
	candidate, err := schedule.FromBooking(booking)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to build interval for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to build interval: %v", ErrInternal, err)
	}

	confirmed, err := s.bookingRepo.GetConfirmedByEquipmentAndDate(ctx, booking.EquipmentID, booking.Date)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to get confirmed bookings: %v", err)
		return fmt.Errorf("%w: failed to get confirmed bookings: %v", ErrInternal, err)
	}

	// Само бронирование еще не confirmed и в выборку не попадает
	if schedule.ConflictsWithBookings(candidate, confirmed) {
		s.logger.Warn("UpdateStatus: confirming booking id=%d would overlap a confirmed booking", booking.ID)
		return ErrConfirmConflict
	}

	return nil
}
