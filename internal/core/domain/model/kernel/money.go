package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"assistance/internal/pkg/errs"
)

// Money represents a non-negative monetary amount used for coverage terms,
// extra-cost prices and order totals. It wraps shopspring/decimal to avoid
// binary floating point drift in cost arithmetic.
//
// Money is an immutable value object; arithmetic methods return new values.
// The zero value is a valid zero amount, so no constructor guard is needed.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected with a validation error.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulDecimal returns the amount scaled by the given decimal factor.
func (m Money) MulDecimal(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the amount as a float64 for read-model projections.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the decimal string form of the amount.
func (m Money) String() string {
	return m.amount.String()
}
