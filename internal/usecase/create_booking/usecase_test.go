package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

type fakeClient struct {
	calls    int
	lastReq  *bookingClient.CreateBookingRequest
	lastKey  string
	response *domain.Booking
	err      error
}

func (f *fakeClient) CreateBooking(ctx context.Context, userID int64, idempotencyKey string, req *bookingClient.CreateBookingRequest) (*domain.Booking, error) {
	f.calls++
	f.lastReq = req
	f.lastKey = idempotencyKey
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type recordLogger struct {
	warns []string
}

func (l *recordLogger) Info(format string, v ...interface{}) {}

func (l *recordLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(client *fakeClient, now time.Time) *UseCase {
	uc := NewUseCase(client, time.UTC, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    42,
		ServiceID: 1,
		UnitPrice: 200000,
		Quantity:  3,
		Date:      time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
		Slot:      types.TimeString("10:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	client := &fakeClient{
		response: &domain.Booking{
			ID: 7, ServiceID: 1, UserID: 42, Quantity: 3,
			TotalPrice: 600000, Status: domain.StatusPending,
		},
	}
	now := time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(client, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, int64(600000), client.lastReq.TotalPrice)
	assert.Equal(t, "2026-05-12T10:00:00Z", client.lastReq.BookingDate)
	assert.NotEmpty(t, client.lastKey)
}

func TestExecute_DiscountFloorsAtZero(t *testing.T) {
	client := &fakeClient{
		response: &domain.Booking{ID: 8, Status: domain.StatusPending},
	}
	uc := newTestUseCase(client, time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC))

	req := validRequest()
	req.Discount = &domain.Discount{DiscountID: 3, Code: "BIG", DiscountAmount: 700000}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(0), client.lastReq.TotalPrice)
	require.NotNil(t, client.lastReq.DiscountID)
	assert.Equal(t, int64(3), *client.lastReq.DiscountID)
}

func TestExecute_QuantityOutOfBounds(t *testing.T) {
	client := &fakeClient{}
	uc := newTestUseCase(client, time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC))

	for _, quantity := range []int{0, -1, 11} {
		req := validRequest()
		req.Quantity = quantity

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity=%d", quantity)
	}

	assert.Equal(t, 0, client.calls)
}

func TestExecute_SlotNotChosen(t *testing.T) {
	client := &fakeClient{}
	uc := newTestUseCase(client, time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC))

	req := validRequest()
	req.Slot = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotChosen)

	req = validRequest()
	req.Date = time.Time{}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotChosen)

	assert.Equal(t, 0, client.calls)
}

func TestExecute_SlotInPast(t *testing.T) {
	client := &fakeClient{}
	// Сейчас 2026-05-12 10:15
	uc := newTestUseCase(client, time.Date(2026, 5, 12, 10, 15, 0, 0, time.UTC))

	// Сегодняшний слот в прошлом
	req := validRequest()
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotInPast)

	// Слот ровно в текущую минуту тоже блокируется
	req = validRequest()
	req.Slot = types.TimeString("10:15")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotInPast)

	// Вчерашняя дата блокируется
	req = validRequest()
	req.Date = time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotInPast)

	// Сегодняшний будущий слот проходит
	req = validRequest()
	req.Slot = types.TimeString("10:16")
	client.response = &domain.Booking{ID: 9, Status: domain.StatusPending}
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_NotesNormalized(t *testing.T) {
	client := &fakeClient{
		response: &domain.Booking{ID: 10, Status: domain.StatusPending},
	}
	uc := newTestUseCase(client, time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC))

	// Пробелы по краям обрезаются
	req := validRequest()
	notes := "  подъезд со двора  "
	req.Notes = &notes

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, client.lastReq.Notes)
	assert.Equal(t, "подъезд со двора", *client.lastReq.Notes)

	// Комментарий из одних пробелов не отправляется вовсе
	req = validRequest()
	blank := "   "
	req.Notes = &blank

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, client.lastReq.Notes)
}

func TestExecute_UnexpectedInitialStatusLogged(t *testing.T) {
	client := &fakeClient{
		response: &domain.Booking{ID: 11, Status: domain.StatusConfirmed},
	}
	logger := &recordLogger{}
	uc := NewUseCase(client, time.UTC, logger)
	uc.timeProvider = &fixedTime{now: time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Бронирование отдается как есть, расхождение только логируется
	assert.Equal(t, "CONFIRMED", resp.Status)
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "CONFIRMED")
}

func TestExecute_SlotConflictIsNotRetried(t *testing.T) {
	client := &fakeClient{err: bookingClient.ErrSlotConflict}
	uc := newTestUseCase(client, time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, client.calls)
}

func TestExecute_RejectedByAPI(t *testing.T) {
	client := &fakeClient{err: bookingClient.ErrBookingRejected}
	uc := newTestUseCase(client, time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRejected)
}
