package domain

import "time"

// Feedback отзыв пользователя о завершенном бронировании
// Не более одного отзыва на бронирование
type Feedback struct {
	ID        int64
	BookingID int64
	UserID    int64
	Rating    int // 1..5
	Comment   *string
	CreatedAt time.Time
}
