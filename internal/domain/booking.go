package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the status of a booking
// Status values are owned by the booking API and transmitted verbatim
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCheckedIn BookingStatus = "CHECKED_IN"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// transitions допустимые переходы статусов жизненного цикла бронирования
// PENDING → CONFIRMED | CANCELLED
// CONFIRMED → CHECKED_IN | CANCELLED
// CHECKED_IN → COMPLETED
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// InitialStatus статус вновь созданного бронирования
func InitialStatus() BookingStatus {
	return StatusPending
}

// ValidStatus возвращает true для известного статуса
func ValidStatus(s BookingStatus) bool {
	_, ok := transitions[s]
	return ok
}

// ParseStatus валидирует строку статуса, пришедшую извне
func ParseStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !ValidStatus(status) {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// CanTransition возвращает true, если переход from → to разрешен жизненным циклом
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal возвращает true для конечных статусов (COMPLETED, CANCELLED)
func (s BookingStatus) IsTerminal() bool {
	return ValidStatus(s) && len(transitions[s]) == 0
}

// Booking represents a marketplace booking
// Created once by the customer; status is mutated by provider/admin actions
// on the booking API side, except cancellation which the owner may request
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
	Status          BookingStatus
	CancelReason    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true if the booking may still be cancelled by its owner
func (b *Booking) CanBeCancelled() bool {
	return CanTransition(b.Status, StatusCancelled)
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// CanBeReviewedBy возвращает true, если пользователь может оставить отзыв:
// бронирование завершено и принадлежит этому пользователю
// Отсутствие существующего отзыва проверяется отдельно по списку отзывов
func (b *Booking) CanBeReviewedBy(userID int64) bool {
	return b.Status == StatusCompleted && b.IsOwnedBy(userID)
}
