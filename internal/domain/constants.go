package domain

// Business day window (fixed daily schedule for all providers)
const (
	// OpenTimeMinutes минута начала рабочего дня (08:00)
	OpenTimeMinutes = 8 * 60

	// CloseTimeMinutes минута конца рабочего дня (21:00)
	CloseTimeMinutes = 21 * 60
)

// Booking validation constants
const (
	MinQuantity = 1
	MaxQuantity = 10

	MinRating = 1
	MaxRating = 5

	MaxNotesLength        = 500
	MaxCancelReasonLength = 500
	MaxCommentLength      = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
