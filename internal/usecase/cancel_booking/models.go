package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	UserID    int64
	BookingID int64
	Reason    string
}

// Response модель ответа с отмененным бронированием
type Response struct {
	ID           int64
	ServiceID    int64
	Status       string
	CancelReason *string
	UpdatedAt    time.Time
}
