package models

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
)

// BookingResponse модель бронирования для внешних потребителей
type BookingResponse struct {
	ID              int64
	EquipmentID     int64
	UserID          int64
	Date            time.Time
	StartTime       string
	EndTime         string
	DurationMinutes int
	Purpose         string
	Reason          string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string // Новый статус (pending/confirmed/declined/cancelled/complete)
	Reason string // Причина отклонения/отмены (опционально)
}

// FromDomainBooking конвертирует доменное бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		EquipmentID:     b.EquipmentID,
		UserID:          b.UserID,
		Date:            b.Date,
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Purpose:         b.Purpose,
		Reason:          b.Reason,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(items []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(items))
	for i, b := range items {
		result[i] = FromDomainBooking(b)
	}
	return result
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, bool) {
	status := domain.BookingStatus(s)
	return status, domain.ValidBookingStatus(status)
}
