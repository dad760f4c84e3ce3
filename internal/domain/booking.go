package domain

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

// BookingStatus represents the status of an equipment booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
	StatusCancelled BookingStatus = "cancelled"
	StatusComplete  BookingStatus = "complete"
)

// Booking represents a reservation of a time slot on a piece of equipment
// Only confirmed bookings block availability; a freshly created booking is
// pending until an admin approves it
type Booking struct {
	ID              int64
	EquipmentID     int64
	UserID          int64
	Date            time.Time // calendar day, time part zeroed
	StartTime       types.TimeString
	EndTime         types.TimeString // computed from StartTime + duration and stored
	DurationMinutes int
	Purpose         string
	Reason          string // decline/cancel reason set by an admin
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksAvailability returns true if the booking is a conflict source
func (b *Booking) BlocksAvailability() bool {
	return b.Status == StatusConfirmed
}

// IsFinished returns true if the booking reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == StatusDeclined ||
		b.Status == StatusCancelled ||
		b.Status == StatusComplete
}

// ValidBookingStatus reports whether s is one of the allowed statuses
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCancelled, StatusComplete:
		return true
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	EquipmentID *int64         // Фильтр по оборудованию (опционально)
	UserID      *int64         // Фильтр по пользователю (опционально)
	Date        *time.Time     // Фильтр по календарной дате (опционально)
	Status      *BookingStatus // Фильтр по статусу (опционально)
}
