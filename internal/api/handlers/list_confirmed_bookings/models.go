package list_confirmed_bookings

import (
	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/internal/service/bookings/models"
)

// ConfirmedBookingResponse публичная модель занятого слота
// Личные данные (пользователь, цель) не раскрываются
type ConfirmedBookingResponse struct {
	EquipmentID     int64  `json:"equipmentId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ListConfirmedResponse HTTP response model с расписанием занятости
type ListConfirmedResponse struct {
	Bookings []ConfirmedBookingResponse `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(items []*models.BookingResponse) *ListConfirmedResponse {
	out := &ListConfirmedResponse{Bookings: make([]ConfirmedBookingResponse, len(items))}
	for i, b := range items {
		out.Bookings[i] = ConfirmedBookingResponse{
			EquipmentID:     b.EquipmentID,
			Date:            b.Date.Format(domain.DateFormat),
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: b.DurationMinutes,
		}
	}
	return out
}
