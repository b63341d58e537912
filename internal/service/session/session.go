package session

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// phase явное состояние формы бронирования
// Одно перечисление вместо набора булевых флагов: невалидные комбинации
// ("купон в полете" + "купон в полете еще раз") невыразимы
type phase int

const (
	// phaseIdle форма доступна для изменений
	phaseIdle phase = iota

	// phaseCouponPending выполняется валидация купона; повторная отправка запрещена
	phaseCouponPending
)

// state состояние одной booking-сессии (одна заполняемая форма бронирования)
// Доступ сериализуется мьютексом сервиса
type state struct {
	id     string
	userID int64

	// Снимок услуги на момент старта сессии: услуга неизменна
	// в течение жизни сессии
	service domain.Service

	quantity int
	date     time.Time        // нулевое значение - дата не выбрана
	slot     types.TimeString // пустое значение - время не выбрано

	// Не более одной примененной скидки; новая заменяет старую
	discount *domain.Discount

	phase phase

	// couponEpoch растет при каждом событии, инвалидирующем результат
	// валидации купона (смена количества, явное удаление скидки).
	// Ответ валидации, стартовавшей в старой эпохе, отбрасывается
	couponEpoch uint64

	lastActivity time.Time
}

func (s *state) baseTotal() int64 {
	return s.service.UnitPrice * int64(s.quantity)
}

func (s *state) total() int64 {
	return domain.CalculateTotal(s.service.UnitPrice, s.quantity, s.discount)
}

// clearDiscount сбрасывает примененную скидку и инвалидирует
// незавершенные валидации купона
func (s *state) clearDiscount() {
	s.discount = nil
	s.couponEpoch++
}
