package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

type fakeClient struct {
	listCalls int
	bookings  []*domain.Booking
	err       error
}

func (f *fakeClient) GetBooking(ctx context.Context, userID int64, bookingID int64) (*domain.Booking, error) {
	for _, booking := range f.bookings {
		if booking.ID == bookingID {
			return booking, nil
		}
	}
	return nil, f.err
}

func (f *fakeClient) ListUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func userBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, UserID: 42, Status: domain.StatusCompleted},
		{ID: 2, UserID: 42, Status: domain.StatusPending},
		{ID: 3, UserID: 42, Status: domain.StatusCompleted},
	}
}

func TestGetUserBookings_NoFilter(t *testing.T) {
	client := &fakeClient{bookings: userBookings()}
	service := NewService(client, nopLogger{})

	list, err := service.GetUserBookings(context.Background(), 42, "")
	require.NoError(t, err)

	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Bookings, 3)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	client := &fakeClient{bookings: userBookings()}
	service := NewService(client, nopLogger{})

	list, err := service.GetUserBookings(context.Background(), 42, "COMPLETED")
	require.NoError(t, err)

	require.Equal(t, 2, list.Total)
	for _, booking := range list.Bookings {
		assert.Equal(t, "COMPLETED", booking.Status)
	}
}

func TestGetUserBookings_InvalidStatusFilter(t *testing.T) {
	client := &fakeClient{bookings: userBookings()}
	service := NewService(client, nopLogger{})

	// Неизвестный статус отклоняется локально, без похода в booking API
	_, err := service.GetUserBookings(context.Background(), 42, "FINISHED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, 0, client.listCalls)
}

func TestGetUserBookings_ComputedFlags(t *testing.T) {
	client := &fakeClient{bookings: userBookings()}
	service := NewService(client, nopLogger{})

	list, err := service.GetUserBookings(context.Background(), 42, "")
	require.NoError(t, err)

	byID := make(map[int64]bool, len(list.Bookings))
	for _, booking := range list.Bookings {
		byID[booking.ID] = booking.CanBeReviewed
	}
	assert.True(t, byID[1])
	assert.False(t, byID[2])
}
