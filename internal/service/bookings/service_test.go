package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	bookingRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/booking"
	"github.com/fabworks/FabLab-BookingService/internal/service/bookings/models"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	byID          map[int64]*domain.Booking
	confirmed     []*domain.Booking
	listed        []*domain.Booking
	listFilter    *domain.BookingsFilter
	statusUpdates []domain.BookingStatus
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByUserID(context.Context, int64) ([]*domain.Booking, error) {
	return f.listed, nil
}

func (f *fakeRepo) GetConfirmedByEquipmentAndDate(context.Context, int64, time.Time) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.listFilter = &filter
	return f.listed, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus, _ string) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		EquipmentID: 1,
		UserID:      7,
		Date:        testDate,
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusPending,
	}
}

func TestUpdateStatus_ConfirmFreeSlot(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: pendingBooking(1)}}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	require.Len(t, repo.statusUpdates, 1)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[0])
}

func TestUpdateStatus_ConfirmConflict(t *testing.T) {
	// Две пересекающиеся pending-заявки: первую подтвердили, вторую уже нельзя
	repo := &fakeRepo{
		byID: map[int64]*domain.Booking{2: pendingBooking(2)},
		confirmed: []*domain.Booking{{
			ID: 1, EquipmentID: 1, Date: testDate,
			StartTime: "10:30", EndTime: "11:30",
			Status: domain.StatusConfirmed,
		}},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrConfirmConflict)
	assert.Empty(t, repo.statusUpdates, "status must not change on conflict")
}

func TestUpdateStatus_ConfirmBackToBack(t *testing.T) {
	repo := &fakeRepo{
		byID: map[int64]*domain.Booking{2: pendingBooking(2)},
		confirmed: []*domain.Booking{{
			ID: 1, EquipmentID: 1, Date: testDate,
			StartTime: "11:00", EndTime: "12:00",
			Status: domain.StatusConfirmed,
		}},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
}

func TestUpdateStatus_DeclineSkipsConflictCheck(t *testing.T) {
	// Отклонение не создает пересечений - проверка конфликта не выполняется
	repo := &fakeRepo{
		byID: map[int64]*domain.Booking{1: pendingBooking(1)},
		confirmed: []*domain.Booking{{
			ID: 9, EquipmentID: 1, Date: testDate,
			StartTime: "10:00", EndTime: "11:00",
			Status: domain.StatusConfirmed,
		}},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: "declined",
		Reason: "equipment reserved for a course",
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.BookingStatus{domain.StatusDeclined}, repo.statusUpdates)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	status := "approved"
	_, err := svc.List(context.Background(), &status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListConfirmed_FiltersByConfirmed(t *testing.T) {
	repo := &fakeRepo{listed: []*domain.Booking{pendingBooking(1)}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListConfirmed(context.Background())
	require.NoError(t, err)

	require.NotNil(t, repo.listFilter)
	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.listFilter.Status)
}
