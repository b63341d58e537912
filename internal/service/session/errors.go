package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrServiceNotFound возвращается, когда услуга для сессии не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidQuantity возвращается при количестве вне границ [1,10]
	ErrInvalidQuantity = errors.New("quantity is out of bounds")

	// ErrInvalidSlot возвращается при некорректной дате или метке времени слота
	ErrInvalidSlot = errors.New("invalid slot selection")

	// ErrEmptyCouponCode возвращается при пустом купон-коде
	// Локальная валидация: сетевой вызов не выполняется
	ErrEmptyCouponCode = errors.New("coupon code is empty")

	// ErrCouponRequestInFlight возвращается при повторной отправке купона,
	// пока предыдущая валидация не завершилась (защита от двойной отправки)
	ErrCouponRequestInFlight = errors.New("coupon validation is already in flight")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("session service: internal error")
)
