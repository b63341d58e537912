package create_feedback

import "time"

// Request модель запроса на создание отзыва
type Request struct {
	UserID    int64
	BookingID int64
	Rating    int
	Comment   *string
}

// Response модель ответа с созданным отзывом
type Response struct {
	ID        int64
	BookingID int64
	Rating    int
	Comment   *string
	CreatedAt time.Time
}
