package domain

// Discount серверно-провалидированная скидка, привязанная к купон-коду
// Создается только по результату вызова discount API: правила (минимальная
// сумма заказа, лимиты использования, срок действия) авторитетны на сервере
type Discount struct {
	DiscountID     int64
	Code           string
	DiscountAmount int64
	FinalPrice     int64
}
