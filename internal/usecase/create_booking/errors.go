package create_booking

import "errors"

var (
	// ErrInvalidQuantity возвращается при количестве вне границ [1,10]
	ErrInvalidQuantity = errors.New("create_booking: quantity is out of bounds")

	// ErrSlotNotChosen возвращается, когда дата или время не выбраны
	// Локальная валидация: сетевой вызов не выполняется
	ErrSlotNotChosen = errors.New("create_booking: date and time must be chosen")

	// ErrSlotInPast возвращается, когда выбранный слот уже прошел
	ErrSlotInPast = errors.New("create_booking: selected slot is in the past")

	// ErrNotesTooLong возвращается при превышении длины заметок
	ErrNotesTooLong = errors.New("create_booking: notes are too long")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotTaken возвращается, когда слот занят на момент отправки,
	// хотя в календаре выглядел доступным. Повторная отправка не выполняется:
	// пользователь выбирает слот заново, что запускает свежую загрузку
	// занятых меток
	ErrSlotTaken = errors.New("create_booking: slot was taken before submission")

	// ErrRejected возвращается, когда booking API отклонил запрос
	// по бизнес-правилам (причина от сервера)
	ErrRejected = errors.New("create_booking: rejected by booking API")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
