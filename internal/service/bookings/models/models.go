package models

import "time"

// Booking DTO бронирования для чтения
type Booking struct {
	ID              int64
	ServiceID       int64
	UserID          int64
	ProviderID      int64
	BookingDateTime time.Time
	Quantity        int
	Notes           *string
	DiscountID      *int64
	TotalPrice      int64
	Status          string
	CancelReason    *string
	CanBeCancelled  bool
	CanBeReviewed   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookingList DTO списка бронирований пользователя
type BookingList struct {
	Bookings []Booking
	Total    int
}
