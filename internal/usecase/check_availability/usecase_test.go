package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetConfirmedByEquipmentAndDate(context.Context, int64, time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeSearcher struct {
	slots  []schedule.Slot
	err    error
	called bool
}

func (f *fakeSearcher) FindSlots(context.Context, int64, time.Time, types.TimeString, int) ([]schedule.Slot, error) {
	f.called = true
	return f.slots, f.err
}

func validRequest() *Request {
	return &Request{
		EquipmentID:     1,
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 60,
	}
}

func TestExecute_SlotAvailable(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{Date: testDate, StartTime: "08:00", EndTime: "09:00", Status: domain.StatusConfirmed},
		// Впритык к запрошенному слоту - не конфликт
		{Date: testDate, StartTime: "11:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	}}
	searcher := &fakeSearcher{}
	uc := NewUseCase(repo, searcher, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.SuggestedSlots)
	assert.False(t, searcher.called, "searcher must not run when the slot is free")
}

func TestExecute_SlotConflictReturnsSuggestions(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{Date: testDate, StartTime: "10:30", EndTime: "11:30", Status: domain.StatusConfirmed},
	}}
	searcher := &fakeSearcher{slots: []schedule.Slot{
		{Date: testDate, Time: "11:30"},
		{Date: testDate, Time: "11:45"},
	}}
	uc := NewUseCase(repo, searcher, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Len(t, resp.SuggestedSlots, 2)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeSearcher{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero equipment", func(r *Request) { r.EquipmentID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.StartTime = "" }},
		{"bad time format", func(r *Request) { r.StartTime = "25:99" }},
		{"zero duration", func(r *Request) { r.DurationMinutes = 0 }},
		{"duration over max", func(r *Request) { r.DurationMinutes = 1441 }},
		{"spills past midnight", func(r *Request) { r.StartTime = "23:30"; r.DurationMinutes = 60 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, &fakeSearcher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
