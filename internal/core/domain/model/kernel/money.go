package kernel

import (
	"github.com/shopspring/decimal"
)

// moneyPlaces is the fixed number of decimal places every monetary value carries.
const moneyPlaces = 2

// Money is an immutable monetary amount with two-decimal precision.
// Every constructor and arithmetic method rounds its result half-up to two
// decimal places, so chained calculations never accumulate sub-cent drift.
//
// The zero value is a valid amount of 0.00.
//
// Example:
//
//	subtotal := kernel.MoneyFromFloat(500)
//	fee := kernel.MoneyFromFloat(40)
//	taxes := subtotal.Add(fee).MulRate(decimal.RequireFromString("0.09")) // 48.60
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal, rounding half-up to two places.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(moneyPlaces)}
}

// MoneyFromFloat creates Money from a float64, rounding half-up to two places.
func MoneyFromFloat(amount float64) Money {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}

	return NewMoney(d), nil
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Decimal returns the underlying rounded decimal.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for transport layers.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount with exactly two decimal places, e.g. "593.60".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Sub returns m - other. The result may be negative.
func (m Money) Sub(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

// MulInt returns m multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(n))))
}

// MulRate returns m multiplied by a fractional rate (0.09 for 9%), rounded half-up.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(rate))
}

// Percent returns percent/100 of m, rounded half-up. Percent(20) of 1200.00 is 240.00.
func (m Money) Percent(percent decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(percent).Div(decimal.NewFromInt(100)))
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether m == 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two amounts numerically.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
