package domain

// CalculateTotal вычисляет итоговую сумму заказа
// baseTotal = unitPrice * quantity; примененная скидка вычитается,
// результат никогда не опускается ниже нуля
// Границы quantity [1,10] проверяет вызывающая сторона
func CalculateTotal(unitPrice int64, quantity int, discount *Discount) int64 {
	total := unitPrice * int64(quantity)

	if discount != nil {
		total -= discount.DiscountAmount
	}

	if total < 0 {
		return 0
	}
	return total
}
