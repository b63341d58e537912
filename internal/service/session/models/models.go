package models

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// SessionView снимок состояния booking-сессии для презентационного слоя
type SessionView struct {
	ID              string
	ServiceID       int64
	ServiceName     string
	UnitPrice       int64
	DurationMinutes int
	Quantity        int
	Date            *time.Time       // nil - дата не выбрана
	Slot            types.TimeString // пустое значение - время не выбрано
	Discount        *domain.Discount // nil - скидка не применена
	BaseTotal       int64
	TotalPrice      int64
}

// Snapshot данные сессии для сборки запроса на создание бронирования
type Snapshot struct {
	SessionID       string
	UserID          int64
	ServiceID       int64
	ProviderID      int64
	UnitPrice       int64
	DurationMinutes int
	Quantity        int
	Date            time.Time
	Slot            types.TimeString
	Discount        *domain.Discount
}
