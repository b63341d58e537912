package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotal_NoDiscount(t *testing.T) {
	assert.Equal(t, int64(600000), CalculateTotal(200000, 3, nil))
	assert.Equal(t, int64(200000), CalculateTotal(200000, 1, nil))
	assert.Equal(t, int64(0), CalculateTotal(0, 5, nil))
}

func TestCalculateTotal_WithDiscount(t *testing.T) {
	discount := &Discount{DiscountID: 1, Code: "SALE", DiscountAmount: 50000}
	assert.Equal(t, int64(550000), CalculateTotal(200000, 3, discount))
}

func TestCalculateTotal_DiscountExceedsBase(t *testing.T) {
	// Скидка больше базовой суммы: итог прижимается к нулю, не уходит в минус
	discount := &Discount{DiscountID: 2, Code: "BIG", DiscountAmount: 700000}
	assert.Equal(t, int64(0), CalculateTotal(200000, 3, discount))
}

func TestCalculateTotal_DiscountEqualsBase(t *testing.T) {
	discount := &Discount{DiscountID: 3, Code: "FULL", DiscountAmount: 600000}
	assert.Equal(t, int64(0), CalculateTotal(200000, 3, discount))
}
