package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

// Request модель запроса на получение слотов календаря
type Request struct {
	UserID    int64     // ID пользователя (для логирования, не влияет на результат)
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую строится календарь (без времени)
}

// Response модель ответа со слотами календаря
// Слоты возвращаются все (включая заблокированные) - презентационный слой
// показывает их неактивными, а не скрывает
type Response struct {
	ServiceID       int64
	Date            time.Time
	DurationMinutes int
	Slots           []domain.TimeSlot
}
