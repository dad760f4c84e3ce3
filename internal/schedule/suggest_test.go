package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// fakeBookingSource отдает подтвержденные бронирования по дате
type fakeBookingSource struct {
	byDate map[string][]*domain.Booking
}

func (f *fakeBookingSource) GetConfirmedByEquipmentAndDate(_ context.Context, _ int64, date time.Time) ([]*domain.Booking, error) {
	return f.byDate[date.Format(domain.DateFormat)], nil
}

func bookingOn(date time.Time, startTime, endTime string) *domain.Booking {
	return &domain.Booking{
		EquipmentID: 1,
		Date:        date,
		StartTime:   types.TimeString(startTime),
		EndTime:     types.TimeString(endTime),
		Status:      domain.StatusConfirmed,
	}
}

func TestFindSlots_FirstSlotsAfterRequestedTime(t *testing.T) {
	// Свободный день: первые предложения идут с шагом 15 минут,
	// начиная на шаг позже запрошенного времени
	source := &fakeBookingSource{byDate: map[string][]*domain.Booking{}}
	searcher := NewSearcher(source, 0, 0, 0)

	slots, err := searcher.FindSlots(context.Background(), 1, testDate, "10:00", 60)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	expected := []string{"10:15", "10:30", "10:45", "11:00", "11:15"}
	for i, slot := range slots {
		assert.Equal(t, testDate, slot.Date)
		assert.Equal(t, expected[i], slot.Time.String())
	}
}

func TestFindSlots_SkipsConflictingCursor(t *testing.T) {
	// Бронирование [10:00, 11:00): курсоры 10:15..10:45 конфликтуют,
	// первое свободное начало - 11:00 (касание границы разрешено)
	source := &fakeBookingSource{byDate: map[string][]*domain.Booking{
		testDate.Format(domain.DateFormat): {bookingOn(testDate, "10:00", "11:00")},
	}}
	searcher := NewSearcher(source, 0, 0, 0)

	slots, err := searcher.FindSlots(context.Background(), 1, testDate, "10:00", 60)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	expected := []string{"11:00", "11:15", "11:30", "11:45", "12:00"}
	for i, slot := range slots {
		assert.Equal(t, expected[i], slot.Time.String())
	}

	// Все предложения действительно свободны от конфликтов
	for _, slot := range slots {
		iv, err := NewInterval(slot.Date, slot.Time, 60)
		require.NoError(t, err)
		bookings := source.byDate[slot.Date.Format(domain.DateFormat)]
		assert.False(t, ConflictsWithBookings(iv, bookings), "slot %s must be conflict-free", slot.Time)
	}
}

func TestFindSlots_SpillsIntoNextDay(t *testing.T) {
	// Запрос в конце дня: слот длительностью 120 минут не помещается до 23:59,
	// поиск переходит на следующий день с 00:00
	source := &fakeBookingSource{byDate: map[string][]*domain.Booking{}}
	searcher := NewSearcher(source, 0, 0, 0)

	slots, err := searcher.FindSlots(context.Background(), 1, testDate, "23:00", 120)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	nextDay := testDate.AddDate(0, 0, 1)
	expected := []string{"00:00", "00:15", "00:30", "00:45", "01:00"}
	for i, slot := range slots {
		assert.Equal(t, nextDay, slot.Date)
		assert.Equal(t, expected[i], slot.Time.String())
	}
}

func TestFindSlots_ChronologicalAcrossDays(t *testing.T) {
	// Запрошенный день плотно занят с 10:15 до конца дня - часть предложений
	// уходит на следующий день, порядок строго хронологический
	source := &fakeBookingSource{byDate: map[string][]*domain.Booking{
		testDate.Format(domain.DateFormat): {bookingOn(testDate, "10:45", "23:59")},
	}}
	searcher := NewSearcher(source, 0, 0, 0)

	slots, err := searcher.FindSlots(context.Background(), 1, testDate, "10:00", 30)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	nextDay := testDate.AddDate(0, 0, 1)

	assert.Equal(t, testDate, slots[0].Date)
	assert.Equal(t, "10:15", slots[0].Time.String())

	expected := []string{"00:00", "00:15", "00:30", "00:45"}
	for i, slot := range slots[1:] {
		assert.Equal(t, nextDay, slot.Date)
		assert.Equal(t, expected[i], slot.Time.String())
	}
}

func TestFindSlots_FewerThanMinIsNotAnError(t *testing.T) {
	// Все дни горизонта заняты целиком - предложений нет, но это не ошибка
	byDate := map[string][]*domain.Booking{}
	for offset := 0; offset <= 7; offset++ {
		day := testDate.AddDate(0, 0, offset)
		byDate[day.Format(domain.DateFormat)] = []*domain.Booking{bookingOn(day, "00:00", "23:59")}
	}
	searcher := NewSearcher(&fakeBookingSource{byDate: byDate}, 0, 0, 0)

	slots, err := searcher.FindSlots(context.Background(), 1, testDate, "10:00", 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFindSlots_InvalidDuration(t *testing.T) {
	searcher := NewSearcher(&fakeBookingSource{}, 0, 0, 0)

	_, err := searcher.FindSlots(context.Background(), 1, testDate, "10:00", 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
