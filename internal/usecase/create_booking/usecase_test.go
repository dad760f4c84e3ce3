package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	equipmentRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/equipment"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	confirmed []*domain.Booking
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 42
	b.CreatedAt = time.Now()
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetConfirmedByEquipmentAndDate(context.Context, int64, time.Time) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

type fakeEquipmentRepo struct {
	err error
}

func (f *fakeEquipmentRepo) GetByID(context.Context, int64) (*domain.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Equipment{ID: 1, Name: "3D Printer"}, nil
}

type fakeSearcher struct {
	slots []schedule.Slot
}

func (f *fakeSearcher) FindSlots(context.Context, int64, time.Time, types.TimeString, int) ([]schedule.Slot, error) {
	return f.slots, nil
}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validRequest() *Request {
	return &Request{
		UserID:          7,
		EquipmentID:     1,
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 90,
		Purpose:         "enclosure prototype",
	}
}

func newUseCase(bookingRepo *fakeBookingRepo, equipment *fakeEquipmentRepo, searcher *fakeSearcher) *UseCase {
	return NewUseCase(bookingRepo, equipment, searcher, passthroughTxManager{}, nopLogger{})
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, &fakeEquipmentRepo{}, &fakeSearcher{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Новое бронирование не блокирует доступность до подтверждения
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:30", resp.EndTime.String())

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Equal(t, int64(7), repo.created.UserID)
}

func TestExecute_ConflictReturnsSuggestions(t *testing.T) {
	repo := &fakeBookingRepo{confirmed: []*domain.Booking{
		{Date: testDate, StartTime: "10:30", EndTime: "11:30", Status: domain.StatusConfirmed},
	}}
	searcher := &fakeSearcher{slots: []schedule.Slot{
		{Date: testDate, Time: "11:30"},
		{Date: testDate, Time: "11:45"},
		{Date: testDate, Time: "12:00"},
	}}
	uc := newUseCase(repo, &fakeEquipmentRepo{}, searcher)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Len(t, conflict.SuggestedSlots, 3)

	assert.Nil(t, repo.created, "booking must not be created on conflict")
}

func TestExecute_BackToBackIsAllowed(t *testing.T) {
	repo := &fakeBookingRepo{confirmed: []*domain.Booking{
		{Date: testDate, StartTime: "08:30", EndTime: "10:00", Status: domain.StatusConfirmed},
		{Date: testDate, StartTime: "11:30", EndTime: "12:30", Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(repo, &fakeEquipmentRepo{}, &fakeSearcher{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_Unauthorized(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeEquipmentRepo{}, &fakeSearcher{})

	req := validRequest()
	req.UserID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecute_EquipmentNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeEquipmentRepo{err: equipmentRepo.ErrEquipmentNotFound}, &fakeSearcher{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeEquipmentRepo{}, &fakeSearcher{})

	req := validRequest()
	req.DurationMinutes = -15

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotCrossingMidnightRejected(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, &fakeEquipmentRepo{}, &fakeSearcher{})

	req := validRequest()
	req.StartTime = "23:30"
	req.DurationMinutes = 60

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.created)

	// Впритык к границе суток - допустимо
	req = validRequest()
	req.StartTime = "23:00"
	req.DurationMinutes = 59

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_TransactionErrorPropagates(t *testing.T) {
	txErr := errors.New("serialization failure")
	uc := NewUseCase(&fakeBookingRepo{}, &fakeEquipmentRepo{}, &fakeSearcher{},
		failingTxManager{err: txErr}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, txErr)
}

type failingTxManager struct {
	err error
}

func (f failingTxManager) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return f.err
}
