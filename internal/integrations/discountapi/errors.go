package discountapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	// Валидация купона - путь записи: при недоступности discount API
	// скидка НЕ применяется, degradation к успеху недопустима
	ErrInternal = errors.New("discountapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("discountapi client: invalid response")
)

// CouponInvalidError возвращается, когда сервер отклонил купон-код
// Причина авторитетна на сервере: истек срок, не достигнута минимальная
// сумма заказа, исчерпан лимит использований, код не найден
type CouponInvalidError struct {
	Reason string
}

func (e *CouponInvalidError) Error() string {
	return fmt.Sprintf("discountapi client: coupon invalid: %s", e.Reason)
}

// IsCouponInvalid возвращает CouponInvalidError, если err им является
func IsCouponInvalid(err error) (*CouponInvalidError, bool) {
	var couponErr *CouponInvalidError
	if errors.As(err, &couponErr) {
		return couponErr, true
	}
	return nil, false
}
