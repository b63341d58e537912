package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("service/bookings: booking not found")

	// ErrAccessDenied возвращается при запросе чужого бронирования
	ErrAccessDenied = errors.New("service/bookings: access denied")

	// ErrInvalidStatus возвращается при неизвестном статусе в фильтре списка
	ErrInvalidStatus = errors.New("service/bookings: invalid status filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service/bookings: internal error")
)
