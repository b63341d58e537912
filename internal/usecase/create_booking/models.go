package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// Request модель запроса на создание бронирования
// Собирается из snapshot booking-сессии плюс заметки из формы отправки
type Request struct {
	UserID    int64
	ServiceID int64
	UnitPrice int64            // зафиксированная цена из сессии
	Quantity  int              // количество, [1,10]
	Date      time.Time        // выбранная дата (без времени)
	Slot      types.TimeString // выбранное время начала, "HH:MM"
	Notes     *string
	Discount  *domain.Discount // примененная скидка (может быть nil)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	ServiceID       int64
	UserID          int64
	ProviderID      int64
	BookingDateTime time.Time
	Quantity        int
	Notes           *string
	DiscountID      *int64
	TotalPrice      int64
	Status          string
	CreatedAt       time.Time
}
