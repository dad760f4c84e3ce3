package schedule

import (
	"context"
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// BookingSource источник подтвержденных бронирований на календарный день
type BookingSource interface {
	GetConfirmedByEquipmentAndDate(ctx context.Context, equipmentID int64, date time.Time) ([]*domain.Booking, error)
}

// Slot альтернативный слот той же длительности, свободный от конфликтов
type Slot struct {
	Date time.Time
	Time types.TimeString
}

// Searcher поиск альтернативных слотов вперед по времени
// Обход: сначала остаток запрошенного дня, затем последующие дни,
// с фиксированным шагом StepMinutes; останавливается, как только
// набрано MinSuggestions слотов или исчерпаны MaxDays дней
type Searcher struct {
	bookings BookingSource

	stepMinutes    int
	minSuggestions int
	maxDays        int
}

// NewSearcher создает поиск слотов; нулевые параметры заменяются дефолтами
func NewSearcher(bookings BookingSource, stepMinutes, minSuggestions, maxDays int) *Searcher {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSuggestionStepMinutes
	}
	if minSuggestions <= 0 {
		minSuggestions = domain.DefaultMinSuggestions
	}
	if maxDays <= 0 {
		maxDays = domain.DefaultSuggestionMaxDays
	}
	return &Searcher{
		bookings:       bookings,
		stepMinutes:    stepMinutes,
		minSuggestions: minSuggestions,
		maxDays:        maxDays,
	}
}

// FindSlots ищет до minSuggestions свободных слотов длительности durationMinutes,
// начиная с запрошенного времени
// Порядок строго хронологический: по дням, внутри дня по времени
// Если пространство поиска исчерпано, возвращает меньше слотов - это не ошибка
// Окна обслуживания при поиске не учитываются, только подтвержденные бронирования
func (s *Searcher) FindSlots(
	ctx context.Context,
	equipmentID int64,
	date time.Time,
	startTime types.TimeString,
	durationMinutes int,
) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	reqStart, err := startTime.ToTime(date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(s.stepMinutes) * time.Minute
	suggestions := make([]Slot, 0, s.minSuggestions)

	for dayOffset := 0; dayOffset <= s.maxDays && len(suggestions) < s.minSuggestions; dayOffset++ {
		day := reqStart.AddDate(0, 0, dayOffset)
		dayDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

		bookingsForDay, err := s.bookings.GetConfirmedByEquipmentAndDate(ctx, equipmentID, dayDate)
		if err != nil {
			return nil, err
		}

		// Окно поиска внутри дня: [00:00, 23:59]
		dayEnd := dayDate.Add(23*time.Hour + 59*time.Minute)

		// В запрошенный день курсор стартует на шаг позже запрошенного времени,
		// чтобы не предложить тот же конфликтующий слот; в последующие дни - с 00:00
		cursor := dayDate
		if dayOffset == 0 {
			cursor = reqStart.Add(step)
		}

		for len(suggestions) < s.minSuggestions && !cursor.After(dayEnd) {
			cursorEnd := cursor.Add(duration)
			if cursorEnd.After(dayEnd) {
				// Слот вылезает за конец дня - дальше в этом дне искать нечего
				break
			}

			candidate := Interval{Start: cursor, End: cursorEnd}
			if !ConflictsWithBookings(candidate, bookingsForDay) {
				suggestions = append(suggestions, Slot{
					Date: dayDate,
					Time: types.NewTimeString(cursor),
				})
			}

			cursor = cursor.Add(step)
		}
	}

	return suggestions, nil
}
