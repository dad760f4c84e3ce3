package get_user_bookings

import (
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	EquipmentID     int64  `json:"equipmentId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Purpose         string `json:"purpose,omitempty"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// GetUserBookingsResponse HTTP response model с историей бронирований
type GetUserBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(items []*models.BookingResponse) *GetUserBookingsResponse {
	out := &GetUserBookingsResponse{Bookings: make([]BookingResponse, len(items))}
	for i, b := range items {
		out.Bookings[i] = BookingResponse{
			ID:              b.ID,
			EquipmentID:     b.EquipmentID,
			Date:            b.Date.Format(domain.DateFormat),
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: b.DurationMinutes,
			Purpose:         b.Purpose,
			Reason:          b.Reason,
			Status:          b.Status,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
