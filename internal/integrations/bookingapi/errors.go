package bookingapi

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("bookingapi client: service not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingapi client: booking not found")

	// ErrAccessDenied возвращается, когда API отказал в доступе к ресурсу
	ErrAccessDenied = errors.New("bookingapi client: access denied")

	// ErrSlotConflict возвращается, когда слот уже занят на момент создания
	// бронирования. Повторная отправка не выполняется - пользователь должен
	// выбрать слот заново
	ErrSlotConflict = errors.New("bookingapi client: slot already taken")

	// ErrBookingRejected возвращается, когда API отклонил запрос на создание
	// бронирования по бизнес-правилам (с причиной от сервера)
	ErrBookingRejected = errors.New("bookingapi client: booking rejected")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить
	ErrCannotCancel = errors.New("bookingapi client: booking cannot be cancelled")

	// ErrFeedbackExists возвращается, когда отзыв на бронирование уже существует
	ErrFeedbackExists = errors.New("bookingapi client: feedback already exists")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
