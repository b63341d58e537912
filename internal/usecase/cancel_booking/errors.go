package cancel_booking

import "errors"

var (
	// ErrEmptyCancelReason возвращается при пустой причине отмены
	// Проверка локальная: сетевой вызов не выполняется
	ErrEmptyCancelReason = errors.New("cancel_booking: cancel reason is required")

	// ErrReasonTooLong возвращается при превышении длины причины отмены
	ErrReasonTooLong = errors.New("cancel_booking: cancel reason is too long")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied возвращается при попытке отменить чужое бронирование
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrCannotCancel возвращается, когда статус бронирования не допускает отмену
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled in its current status")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
