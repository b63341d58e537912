package create_feedback

import "errors"

var (
	// ErrInvalidRating возвращается при оценке вне границ [1,5]
	ErrInvalidRating = errors.New("create_feedback: rating is out of bounds")

	// ErrCommentTooLong возвращается при превышении длины комментария
	ErrCommentTooLong = errors.New("create_feedback: comment is too long")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_feedback: booking not found")

	// ErrAccessDenied возвращается при попытке оставить отзыв на чужое бронирование
	ErrAccessDenied = errors.New("create_feedback: access denied")

	// ErrNotCompleted возвращается, когда бронирование еще не завершено
	ErrNotCompleted = errors.New("create_feedback: booking is not completed")

	// ErrFeedbackExists возвращается, когда отзыв на бронирование уже оставлен
	ErrFeedbackExists = errors.New("create_feedback: feedback already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_feedback: internal error")
)
