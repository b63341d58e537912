package cancel_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
)

type fakeClient struct {
	getCalls    int
	cancelCalls int
	lastReason  string

	booking   *domain.Booking
	getErr    error
	cancelled *domain.Booking
	cancelErr error
}

func (f *fakeClient) GetBooking(ctx context.Context, userID int64, bookingID int64) (*domain.Booking, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeClient) CancelBooking(ctx context.Context, userID int64, bookingID int64, reason string) (*domain.Booking, error) {
	f.cancelCalls++
	f.lastReason = reason
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelled, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{ID: 7, UserID: 42, Status: domain.StatusPending}
}

func TestExecute_EmptyReasonNoNetworkCall(t *testing.T) {
	client := &fakeClient{booking: pendingBooking()}
	uc := NewUseCase(client, nopLogger{})

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := uc.Execute(context.Background(), &Request{
			UserID: 42, BookingID: 7, Reason: reason,
		})
		assert.ErrorIs(t, err, ErrEmptyCancelReason, "reason=%q", reason)
	}

	// Локальный отказ: ни одного сетевого вызова
	assert.Equal(t, 0, client.getCalls)
	assert.Equal(t, 0, client.cancelCalls)
}

func TestExecute_Success(t *testing.T) {
	reason := "изменились планы"
	client := &fakeClient{
		booking: pendingBooking(),
		cancelled: &domain.Booking{
			ID: 7, Status: domain.StatusCancelled, CancelReason: &reason,
		},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 42, BookingID: 7, Reason: "  изменились планы  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "CANCELLED", resp.Status)
	// Причина нормализуется перед отправкой
	assert.Equal(t, "изменились планы", client.lastReason)
}

func TestExecute_ConfirmedIsCancellable(t *testing.T) {
	client := &fakeClient{
		booking:   &domain.Booking{ID: 7, UserID: 42, Status: domain.StatusConfirmed},
		cancelled: &domain.Booking{ID: 7, Status: domain.StatusCancelled},
	}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, BookingID: 7, Reason: "reason",
	})
	assert.NoError(t, err)
}

func TestExecute_NonCancellableStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCheckedIn, domain.StatusCompleted, domain.StatusCancelled,
	} {
		client := &fakeClient{
			booking: &domain.Booking{ID: 7, UserID: 42, Status: status},
		}
		uc := NewUseCase(client, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID: 42, BookingID: 7, Reason: "reason",
		})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
		assert.Equal(t, 0, client.cancelCalls, "status %s", status)
	}
}

func TestExecute_NotOwner(t *testing.T) {
	client := &fakeClient{booking: pendingBooking()}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 43, BookingID: 7, Reason: "reason",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, client.cancelCalls)
}

func TestExecute_BookingNotFound(t *testing.T) {
	client := &fakeClient{getErr: bookingClient.ErrBookingNotFound}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, BookingID: 99, Reason: "reason",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ServerRefusesCancel(t *testing.T) {
	// Статус изменился между чтением снимка и отменой: финальное слово за API
	client := &fakeClient{
		booking:   pendingBooking(),
		cancelErr: bookingClient.ErrCannotCancel,
	}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, BookingID: 7, Reason: "reason",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}
