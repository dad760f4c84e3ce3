package domain

import "time"

// MaintenanceType represents the kind of maintenance work
type MaintenanceType string

const (
	MaintenancePreventive  MaintenanceType = "preventive"
	MaintenanceCorrective  MaintenanceType = "corrective"
	MaintenanceCalibration MaintenanceType = "calibration"
	MaintenanceUpgrade     MaintenanceType = "upgrade"
	MaintenanceInspection  MaintenanceType = "inspection"
)

// MaintenanceStatus represents the lifecycle state of a maintenance window
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// MaintenanceWindow represents a maintenance interval for a piece of equipment
// Corrective maintenance starts immediately (Start = now, no End until it is
// explicitly completed); scheduled types carry a [Start, End) window
type MaintenanceWindow struct {
	ID          int64
	EquipmentID int64
	Type        MaintenanceType
	Start       *time.Time
	End         *time.Time // nil for corrective-until-resolved
	Status      MaintenanceStatus
	Assignee    string
	Notes       string

	// Accounting fields filled on completion
	DurationMinutes int
	Cost            float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksScheduling returns true if the window participates in overlap checks
func (m *MaintenanceWindow) BlocksScheduling() bool {
	return m.Status != MaintenanceCancelled
}

// HasWindow returns true if both interval boundaries are set
func (m *MaintenanceWindow) HasWindow() bool {
	return m.Start != nil && m.End != nil
}

// ValidMaintenanceType reports whether t is one of the allowed types
func ValidMaintenanceType(t MaintenanceType) bool {
	switch t {
	case MaintenancePreventive, MaintenanceCorrective, MaintenanceCalibration,
		MaintenanceUpgrade, MaintenanceInspection:
		return true
	default:
		return false
	}
}

// ValidMaintenanceStatus reports whether s is one of the allowed statuses
func ValidMaintenanceStatus(s MaintenanceStatus) bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	default:
		return false
	}
}
