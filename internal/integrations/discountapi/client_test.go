package discountapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, time.Second, nil, nopLogger{})
	return client, server
}

func TestValidate_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/discounts/validate", r.URL.Path)

		var req ValidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SALE10", req.Code)
		assert.Equal(t, int64(600000), req.TotalAmount)

		json.NewEncoder(w).Encode(ValidateResponse{
			Valid:          true,
			DiscountID:     12,
			Code:           "SALE10",
			DiscountAmount: 60000,
			FinalPrice:     540000,
		})
	})
	defer server.Close()

	discount, err := client.Validate(context.Background(), "SALE10", 1, 600000)
	require.NoError(t, err)

	assert.Equal(t, int64(12), discount.DiscountID)
	assert.Equal(t, int64(60000), discount.DiscountAmount)
	assert.Equal(t, int64(540000), discount.FinalPrice)
}

func TestValidate_RejectedWithStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ErrorResponse{Code: 422, Message: "купон истек"})
	})
	defer server.Close()

	_, err := client.Validate(context.Background(), "OLD", 1, 600000)
	require.Error(t, err)

	couponErr, ok := IsCouponInvalid(err)
	require.True(t, ok)
	assert.Equal(t, "купон истек", couponErr.Reason)
}

func TestValidate_RejectedInBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ValidateResponse{
			Valid:   false,
			Message: "минимальная сумма заказа не достигнута",
		})
	})
	defer server.Close()

	_, err := client.Validate(context.Background(), "MIN", 1, 1000)
	couponErr, ok := IsCouponInvalid(err)
	require.True(t, ok)
	assert.Equal(t, "минимальная сумма заказа не достигнута", couponErr.Reason)
}

func TestValidate_TransportFailureIsFailClosed(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // соединение отказывает

	_, err := client.Validate(context.Background(), "SALE10", 1, 600000)
	assert.ErrorIs(t, err, ErrInternal)

	_, ok := IsCouponInvalid(err)
	assert.False(t, ok)
}

func TestValidate_UnexpectedStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.Validate(context.Background(), "SALE10", 1, 600000)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
