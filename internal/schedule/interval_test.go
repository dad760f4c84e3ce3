package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func mustInterval(t *testing.T, startTime string, durationMinutes int) Interval {
	t.Helper()
	iv, err := NewInterval(testDate, types.TimeString(startTime), durationMinutes)
	require.NoError(t, err)
	return iv
}

func confirmedBooking(startTime, endTime string) *domain.Booking {
	return &domain.Booking{
		EquipmentID: 1,
		Date:        testDate,
		StartTime:   types.TimeString(startTime),
		EndTime:     types.TimeString(endTime),
		Status:      domain.StatusConfirmed,
	}
}

func TestNewInterval_InvalidDuration(t *testing.T) {
	_, err := NewInterval(testDate, "10:00", 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = NewInterval(testDate, "10:00", -30)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestOverlaps(t *testing.T) {
	base := mustInterval(t, "10:00", 60) // [10:00, 11:00)

	tests := []struct {
		name     string
		other    Interval
		overlaps bool
	}{
		{"identical", mustInterval(t, "10:00", 60), true},
		{"contained", mustInterval(t, "10:15", 30), true},
		{"partial overlap left", mustInterval(t, "09:30", 60), true},
		{"partial overlap right", mustInterval(t, "10:30", 60), true},
		{"covers", mustInterval(t, "09:00", 180), true},
		{"touches end", mustInterval(t, "11:00", 60), false},
		{"touches start", mustInterval(t, "09:00", 60), false},
		{"disjoint before", mustInterval(t, "08:00", 60), false},
		{"disjoint after", mustInterval(t, "12:00", 60), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestConflictsWithBookings_EmptySet(t *testing.T) {
	candidate := mustInterval(t, "10:00", 60)

	assert.False(t, ConflictsWithBookings(candidate, nil))
	assert.False(t, ConflictsWithBookings(candidate, []*domain.Booking{}))
}

func TestConflictsWithBookings_BackToBack(t *testing.T) {
	// Бронирования впритык к кандидату с обеих сторон - конфликта нет
	candidate := mustInterval(t, "10:00", 60)
	bookings := []*domain.Booking{
		confirmedBooking("09:00", "10:00"),
		confirmedBooking("11:00", "12:00"),
	}

	assert.False(t, ConflictsWithBookings(candidate, bookings))
}

func TestConflictsWithBookings_Overlap(t *testing.T) {
	candidate := mustInterval(t, "10:00", 60)
	bookings := []*domain.Booking{
		confirmedBooking("08:00", "09:00"),
		confirmedBooking("10:30", "11:30"),
	}

	assert.True(t, ConflictsWithBookings(candidate, bookings))
}

func TestConflictsWithBookings_SkipsUnparsable(t *testing.T) {
	candidate := mustInterval(t, "10:00", 60)
	bookings := []*domain.Booking{
		confirmedBooking("not-a-time", "also-bad"),
	}

	assert.False(t, ConflictsWithBookings(candidate, bookings))
}

func TestConflictsWithWindows(t *testing.T) {
	candidate := mustInterval(t, "10:00", 60)

	start := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	overlapping := &domain.MaintenanceWindow{
		Status: domain.MaintenanceScheduled,
		Start:  &start,
		End:    &end,
	}
	assert.True(t, ConflictsWithWindows(candidate, []*domain.MaintenanceWindow{overlapping}))

	// Отмененное окно в проверке не участвует
	cancelled := &domain.MaintenanceWindow{
		Status: domain.MaintenanceCancelled,
		Start:  &start,
		End:    &end,
	}
	assert.False(t, ConflictsWithWindows(candidate, []*domain.MaintenanceWindow{cancelled}))

	// Corrective без заданного конца в проверке не участвует
	openEnded := &domain.MaintenanceWindow{
		Status: domain.MaintenanceInProgress,
		Start:  &start,
	}
	assert.False(t, ConflictsWithWindows(candidate, []*domain.MaintenanceWindow{openEnded}))
}

func TestFromBooking(t *testing.T) {
	iv, err := FromBooking(confirmedBooking("10:00", "11:30"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2026, 9, 15, 11, 30, 0, 0, time.UTC), iv.End)
}
