// Package schedule реализует детектор конфликтов временных интервалов
// и поиск альтернативных слотов для бронирования оборудования
package schedule

import (
	"errors"
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

var (
	// ErrInvalidDuration возвращается при нулевой или отрицательной длительности
	ErrInvalidDuration = errors.New("schedule: duration must be positive")
)

// Interval полуоткрытый интервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval строит интервал из календарной даты, времени начала и длительности
func NewInterval(date time.Time, startTime types.TimeString, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, ErrInvalidDuration
	}

	start, err := startTime.ToTime(date)
	if err != nil {
		return Interval{}, err
	}

	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// FromBooking строит интервал из сохраненного бронирования (date + startTime/endTime)
func FromBooking(b *domain.Booking) (Interval, error) {
	start, err := b.StartTime.ToTime(b.Date)
	if err != nil {
		return Interval{}, err
	}
	end, err := b.EndTime.ToTime(b.Date)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если пересечение непустое:
// NOT (End <= other.Start OR Start >= other.End)
// Граничное касание (End == other.Start) пересечением НЕ считается -
// бронирования впритык разрешены
func (i Interval) Overlaps(other Interval) bool {
	return !(i.End.Compare(other.Start) <= 0 || i.Start.Compare(other.End) >= 0)
}

// ConflictsAny проверяет, пересекается ли кандидат хотя бы с одним из существующих интервалов
func ConflictsAny(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// ConflictsWithBookings проверяет пересечение кандидата с сохраненными бронированиями
// Бронирования с некорректными time-строками пропускаются
func ConflictsWithBookings(candidate Interval, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		iv, err := FromBooking(b)
		if err != nil {
			// Не можем восстановить интервал - пропускаем запись
			continue
		}
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// ConflictsWithWindows проверяет пересечение кандидата с окнами обслуживания
// Окна без обеих границ (например, corrective без end) в проверке не участвуют
func ConflictsWithWindows(candidate Interval, windows []*domain.MaintenanceWindow) bool {
	for _, m := range windows {
		if !m.BlocksScheduling() || !m.HasWindow() {
			continue
		}
		if candidate.Overlaps(Interval{Start: *m.Start, End: *m.End}) {
			return true
		}
	}
	return false
}
