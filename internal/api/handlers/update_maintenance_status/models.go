package update_maintenance_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // scheduled/in-progress/completed/cancelled
}
