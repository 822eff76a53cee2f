package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a value object representing an INR amount in whole rupees.
// It is immutable - all operations return new Money instances.
//
// The storefront prices everything in whole rupees, so Money carries a
// decimal internally only for intermediate math (percentage discounts,
// averages) and rounds back to rupees at the boundaries.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a whole-rupee amount
func NewMoney(rupees int64) Money {
	return Money{amount: decimal.NewFromInt(rupees)}
}

// Zero returns a zero-value Money
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Rupees returns the amount rounded to whole rupees.
// Rounding is half away from zero, matching the discount rules.
func (m Money) Rupees() int64 {
	return m.amount.Round(0).IntPart()
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns a new Money with the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns a new Money with the difference
func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyByInt returns a new Money multiplied by an integer factor
func (m Money) MultiplyByInt(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Percentage returns the given percentage of this Money, rounded to
// whole rupees
func (m Money) Percentage(percent int64) Money {
	p := m.amount.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100))
	return Money{amount: p.Round(0)}
}

// Min returns the smaller of the two amounts
func (m Money) Min(other Money) Money {
	if m.amount.GreaterThan(other.amount) {
		return other
	}
	return m
}

// DivideByInt returns the amount divided by n, rounded to whole rupees.
// Returns Zero when n is 0.
func (m Money) DivideByInt(n int64) Money {
	if n == 0 {
		return Zero()
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(n)).Round(0)}
}

// Equals returns true if both amounts are equal
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Display returns the amount formatted for customer-facing text, e.g. "₹238"
func (m Money) Display() string {
	return fmt.Sprintf("₹%s", m.amount.Round(0).String())
}

// String returns a plain string representation of the amount
func (m Money) String() string {
	return m.amount.String()
}
