package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingGateway/internal/integrations/discountapi"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

type fakeBookingClient struct {
	service    *domain.Service
	serviceErr error
}

func (f *fakeBookingClient) GetService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return f.service, nil
}

// fakeDiscountClient считает вызовы и умеет блокироваться для проверки
// поведения при валидации в полете
type fakeDiscountClient struct {
	calls    atomic.Int64
	discount *domain.Discount
	err      error

	entered chan struct{} // закрывать не нужно, сигнал на каждый вызов
	release chan struct{}
}

func (f *fakeDiscountClient) Validate(ctx context.Context, code string, serviceID int64, totalAmount int64) (*domain.Discount, error) {
	f.calls.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.discount != nil {
		d := *f.discount
		return &d, nil
	}
	return &domain.Discount{DiscountID: 1, Code: code, DiscountAmount: 50000}, nil
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

func testService() *domain.Service {
	return &domain.Service{ID: 1, ProviderID: 5, Name: "Cleaning", UnitPrice: 200000, DurationMinutes: 60}
}

func newTestService(discounts DiscountAPIClient) *Service {
	return NewService(&fakeBookingClient{service: testService()}, discounts, nil, testLogger{})
}

func TestStart_SnapshotsService(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})

	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, int64(200000), view.UnitPrice)
	assert.Equal(t, 1, view.Quantity)
	assert.Equal(t, int64(200000), view.TotalPrice)
	assert.Nil(t, view.Discount)
}

func TestStart_ServiceNotFound(t *testing.T) {
	svc := NewService(
		&fakeBookingClient{serviceErr: bookingapi.ErrServiceNotFound},
		&fakeDiscountClient{}, nil, testLogger{},
	)

	_, err := svc.Start(context.Background(), 42, 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGet_OwnerOnly(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	_, err = svc.Get(view.ID, 42)
	assert.NoError(t, err)

	_, err = svc.Get(view.ID, 43)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Get("missing", 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetQuantity_Bounds(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	_, err = svc.SetQuantity(view.ID, 42, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.SetQuantity(view.ID, 42, 11)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	updated, err := svc.SetQuantity(view.ID, 42, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, int64(2000000), updated.TotalPrice)
}

func TestSetQuantity_ChangeInvalidatesDiscount(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "SALE")
	require.NoError(t, err)

	updated, err := svc.SetQuantity(view.ID, 42, 3)
	require.NoError(t, err)
	assert.Nil(t, updated.Discount)
	assert.Equal(t, int64(600000), updated.TotalPrice)
}

func TestSetQuantity_SameValueKeepsDiscount(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	_, err = svc.SetQuantity(view.ID, 42, 3)
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "SALE")
	require.NoError(t, err)

	// Установка того же количества не инвалидирует скидку
	updated, err := svc.SetQuantity(view.ID, 42, 3)
	require.NoError(t, err)
	require.NotNil(t, updated.Discount)
	assert.Equal(t, "SALE", updated.Discount.Code)
}

func TestSelectSlot(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	date := time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)
	updated, err := svc.SelectSlot(view.ID, 42, date, types.TimeString("10:00"))
	require.NoError(t, err)
	require.NotNil(t, updated.Date)
	assert.Equal(t, types.TimeString("10:00"), updated.Slot)

	_, err = svc.SelectSlot(view.ID, 42, time.Time{}, types.TimeString("10:00"))
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = svc.SelectSlot(view.ID, 42, date, types.TimeString("bad"))
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestApplyCoupon_EmptyCodeIsLocal(t *testing.T) {
	discounts := &fakeDiscountClient{}
	svc := newTestService(discounts)
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	// Пустой и пробельный код отклоняются без сетевого вызова
	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "")
	assert.ErrorIs(t, err, ErrEmptyCouponCode)

	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "   ")
	assert.ErrorIs(t, err, ErrEmptyCouponCode)

	assert.Equal(t, int64(0), discounts.calls.Load())
}

func TestApplyCoupon_ReplacesNotStacks(t *testing.T) {
	discounts := &fakeDiscountClient{}
	svc := newTestService(discounts)
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	first, err := svc.ApplyCoupon(context.Background(), view.ID, 42, "FIRST")
	require.NoError(t, err)
	require.NotNil(t, first.Discount)
	assert.Equal(t, "FIRST", first.Discount.Code)

	second, err := svc.ApplyCoupon(context.Background(), view.ID, 42, "SECOND")
	require.NoError(t, err)
	require.NotNil(t, second.Discount)
	assert.Equal(t, "SECOND", second.Discount.Code)
	assert.Equal(t, int64(150000), second.TotalPrice)
}

func TestApplyCoupon_RejectionKeepsPriorDiscount(t *testing.T) {
	discounts := &fakeDiscountClient{}
	svc := newTestService(discounts)
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "GOOD")
	require.NoError(t, err)

	discounts.err = &discountapi.CouponInvalidError{Reason: "купон истек"}
	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "EXPIRED")
	require.Error(t, err)
	_, ok := discountapi.IsCouponInvalid(err)
	assert.True(t, ok)

	// Прежняя скидка не тронута
	current, err := svc.Get(view.ID, 42)
	require.NoError(t, err)
	require.NotNil(t, current.Discount)
	assert.Equal(t, "GOOD", current.Discount.Code)
}

func TestApplyCoupon_InFlightGuard(t *testing.T) {
	discounts := &fakeDiscountClient{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	svc := newTestService(discounts)
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.ApplyCoupon(context.Background(), view.ID, 42, "SLOW")
		done <- err
	}()

	<-discounts.entered

	// Пока первая валидация в полете, вторая отклоняется
	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "FAST")
	assert.ErrorIs(t, err, ErrCouponRequestInFlight)

	close(discounts.release)
	require.NoError(t, <-done)

	// После завершения валидации форма снова доступна
	current, err := svc.Get(view.ID, 42)
	require.NoError(t, err)
	require.NotNil(t, current.Discount)
	assert.Equal(t, "SLOW", current.Discount.Code)
}

func TestApplyCoupon_StaleResultDiscarded(t *testing.T) {
	discounts := &fakeDiscountClient{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	svc := newTestService(discounts)
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.ApplyCoupon(context.Background(), view.ID, 42, "SLOW")
		done <- err
	}()

	<-discounts.entered

	// Количество меняется, пока валидация в полете: базовая сумма другая
	_, err = svc.SetQuantity(view.ID, 42, 5)
	require.NoError(t, err)

	close(discounts.release)
	require.NoError(t, <-done)

	// Устаревший результат отброшен
	current, err := svc.Get(view.ID, 42)
	require.NoError(t, err)
	assert.Nil(t, current.Discount)
	assert.Equal(t, int64(1000000), current.TotalPrice)
}

func TestRemoveCoupon(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(context.Background(), view.ID, 42, "SALE")
	require.NoError(t, err)

	updated, err := svc.RemoveCoupon(view.ID, 42)
	require.NoError(t, err)
	assert.Nil(t, updated.Discount)

	// Повторное удаление безопасно
	updated, err = svc.RemoveCoupon(view.ID, 42)
	require.NoError(t, err)
	assert.Nil(t, updated.Discount)
}

func TestSnapshot(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	_, err = svc.SetQuantity(view.ID, 42, 3)
	require.NoError(t, err)

	date := time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)
	_, err = svc.SelectSlot(view.ID, 42, date, types.TimeString("10:00"))
	require.NoError(t, err)

	snap, err := svc.Snapshot(view.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), snap.UserID)
	assert.Equal(t, int64(1), snap.ServiceID)
	assert.Equal(t, int64(200000), snap.UnitPrice)
	assert.Equal(t, 3, snap.Quantity)
	assert.Equal(t, types.TimeString("10:00"), snap.Slot)
}

func TestClose(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Close(view.ID, 42))

	_, err = svc.Get(view.ID, 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCleanupExpired(t *testing.T) {
	svc := newTestService(&fakeDiscountClient{})
	clock := &fixedTime{now: time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC)}
	svc.timeProvider = clock

	view, err := svc.Start(context.Background(), 42, 1)
	require.NoError(t, err)

	// Сессия моложе TTL остается
	assert.Equal(t, 0, svc.CleanupExpired(30*time.Minute))

	clock.now = clock.now.Add(31 * time.Minute)
	assert.Equal(t, 1, svc.CleanupExpired(30*time.Minute))

	_, err = svc.Get(view.ID, 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
