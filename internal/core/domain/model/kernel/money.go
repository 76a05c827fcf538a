package kernel

import (
	"errors"
	"fmt"
	"math"

	"pizza/internal/pkg/errs"
)

// ErrMoneyOverflow is returned when an amount no longer fits in int64.
var ErrMoneyOverflow = errors.New("money amount overflows int64")

// Money is an amount in minor currency units (e.g. cents). Prices are never
// fractional, so integer arithmetic is exact.
type Money int64

// NewMoney validates an amount that must lie within [minAmount, maxAmount].
func NewMoney(paramName string, amount int64, minAmount int64, maxAmount int64) (Money, error) {
	if amount < minAmount || amount > maxAmount {
		return 0, errs.NewValueIsOutOfRangeError(paramName, amount, minAmount, maxAmount)
	}
	return Money(amount), nil
}

// Times returns the amount multiplied by a non-negative quantity.
func (m Money) Times(quantity int) (Money, error) {
	if quantity < 0 {
		return 0, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	if quantity != 0 && (m > math.MaxInt64/Money(quantity) || m < math.MinInt64/Money(quantity)) {
		return 0, fmt.Errorf("%w: %d times %d", ErrMoneyOverflow, m, quantity)
	}
	return m * Money(quantity), nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if (other > 0 && m > math.MaxInt64-other) || (other < 0 && m < math.MinInt64-other) {
		return 0, fmt.Errorf("%w: %d plus %d", ErrMoneyOverflow, m, other)
	}
	return m + other, nil
}

// Int64 returns the amount in minor units.
func (m Money) Int64() int64 {
	return int64(m)
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}
