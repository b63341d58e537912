package domain

// Service represents a bookable marketplace service
// Owned by the provider and fetched from the booking API; immutable
// for the duration of a booking session
type Service struct {
	ID              int64
	ProviderID      int64
	Name            string
	UnitPrice       int64 // positive integer currency units
	DurationMinutes int   // positive
}
