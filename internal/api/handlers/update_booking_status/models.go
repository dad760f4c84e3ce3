package update_booking_status

import "github.com/fabworks/FabLab-BookingService/internal/service/bookings/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`           // pending/confirmed/declined/cancelled/complete
	Reason string `json:"reason,omitempty"` // причина отклонения/отмены
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status: r.Status,
		Reason: r.Reason,
	}
}
