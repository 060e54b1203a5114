package kernel

import (
	"fmt"
	"math"

	"foodorder/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// The amount is stored as an integer number of cents so that arithmetic on
// prices and totals is exact: 8.99 x 2 + 4.50 is 22.48, never 22.480000001.
//
// The zero value is a valid zero amount, which keeps summation natural:
//
//	total := kernel.Money{}
//	for _, line := range lines {
//	    total = total.Add(line.Price().MultiplyQuantity(line.Quantity()))
//	}
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an integer number of cents.
// Returns an error if cents is negative; the domain has no negative prices.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money from a decimal amount such as 8.99,
// rounding to the nearest cent. Used at the boundary where prices arrive as
// decimals; internally everything stays in cents.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%v is not a finite amount", amount))
	}
	return NewMoneyFromCents(int64(math.Round(amount * 100)))
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units, e.g. 2248 cents is 22.48.
// Intended for presentation only; never feed the result back into arithmetic.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQuantity returns the amount multiplied by an item quantity.
func (m Money) MultiplyQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "22.48".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
