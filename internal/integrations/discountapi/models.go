package discountapi

// ValidateRequest запрос на валидацию купон-кода
type ValidateRequest struct {
	Code        string `json:"code"`
	ServiceID   int64  `json:"serviceId"`
	TotalAmount int64  `json:"totalAmount"`
}

// ValidateResponse ответ discount API на валидацию купона
// При valid=false поле message содержит причину отказа для пользователя
type ValidateResponse struct {
	Valid          bool   `json:"valid"`
	DiscountID     int64  `json:"discountId"`
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalPrice     int64  `json:"finalPrice"`
	Message        string `json:"message"`
}

// ErrorResponse модель ошибки от discount API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
