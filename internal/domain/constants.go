package domain

// Default suggestion search parameters
const (
	DefaultSuggestionStepMinutes = 15
	DefaultMinSuggestions        = 5
	DefaultSuggestionMaxDays     = 7
)

// Default equipment values
const (
	DefaultCapacity       = 1
	DefaultBookingMinutes = 30
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 1440 // a full day
	MaxPurposeLength   = 500
	MaxReasonLength    = 500
	MaxNotesLength     = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
