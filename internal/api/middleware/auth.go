package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BookingGateway/internal/api/handlers"
)

const headerUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает идентификатор пользователя из заголовка X-User-ID
// и кладет его в контекст запроса. Запросы без валидного заголовка
// отклоняются с 401: все операции ниже требуют явного пользовательского
// контекста
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(headerUserID)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, headerUserID, raw)
				handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
