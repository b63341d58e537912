package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusConfirmed))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusConfirmed, StatusCheckedIn))
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
	assert.True(t, CanTransition(StatusCheckedIn, StatusCompleted))

	// Запрещенные переходы
	assert.False(t, CanTransition(StatusPending, StatusCheckedIn))
	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusCheckedIn, StatusCancelled))
	assert.False(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s), "status %s", s)
	}
	assert.False(t, ValidStatus("UNKNOWN"))
	assert.False(t, ValidStatus(""))
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("COMPLETED")
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)

	for _, s := range []string{"UNKNOWN", "", "pending"} {
		_, err := ParseStatus(s)
		assert.Error(t, err, "status %q", s)
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
	assert.False(t, BookingStatus("UNKNOWN").IsTerminal())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	for status, want := range map[BookingStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCheckedIn: false,
		StatusCompleted: false,
		StatusCancelled: false,
	} {
		booking := &Booking{Status: status}
		assert.Equal(t, want, booking.CanBeCancelled(), "status %s", status)
	}
}

func TestBooking_CanBeReviewedBy(t *testing.T) {
	booking := &Booking{UserID: 7, Status: StatusCompleted}

	assert.True(t, booking.CanBeReviewedBy(7))
	assert.False(t, booking.CanBeReviewedBy(8))

	booking.Status = StatusCheckedIn
	assert.False(t, booking.CanBeReviewedBy(7))
}
