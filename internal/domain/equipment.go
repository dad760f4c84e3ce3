package domain

import "time"

// EquipmentStatus represents the operational state of a piece of equipment
// The field is derived: it is forced to "maintenance" while any maintenance
// window is in-progress and reverted to "operational" once none remain
type EquipmentStatus string

const (
	EquipmentOperational EquipmentStatus = "operational"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

// TechSpec is a single technical specification entry in canonical key/value form
type TechSpec struct {
	Key   string
	Value string
}

// Equipment represents a bookable fabrication-lab machine
type Equipment struct {
	ID             int64
	Name           string
	Category       string
	Description    string
	Capacity       int
	BookingMinutes int // default booking duration shown to users
	Status         EquipmentStatus

	KeyFeatures        []string
	TechSpecs          []TechSpec
	UsageGuidelines    []string
	SafetyRequirements []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidEquipmentStatus reports whether s is one of the allowed statuses
func ValidEquipmentStatus(s EquipmentStatus) bool {
	return s == EquipmentOperational || s == EquipmentMaintenance
}
