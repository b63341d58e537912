package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestAuth_ValidHeader(t *testing.T) {
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = userID
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	Auth(nopLogger{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestAuth_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()

	Auth(nopLogger{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	for _, value := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set("X-User-ID", value)
		rec := httptest.NewRecorder()

		Auth(nopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "value %q", value)
	}
}

func TestUserIDFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)
}
