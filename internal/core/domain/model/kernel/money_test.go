package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Rounding(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"keeps two places", "12.34", "12.34"},
		{"rounds half up", "0.125", "0.13"},
		{"rounds down below half", "0.124", "0.12"},
		{"pads integer", "5", "5.00"},
		{"rounds negative away from zero", "-1.005", "-1.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := kernel.MoneyFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		})
	}
}

func TestMoneyFromString_Invalid(t *testing.T) {
	_, err := kernel.MoneyFromString("twelve")

	require.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := kernel.MoneyFromFloat(500)
	b := kernel.MoneyFromFloat(40)

	t.Run("should add and subtract", func(t *testing.T) {
		assert.Equal(t, "540.00", a.Add(b).String())
		assert.Equal(t, "-460.00", b.Sub(a).String())
		assert.True(t, b.Sub(a).IsNegative())
	})

	t.Run("should multiply by rate with rounding", func(t *testing.T) {
		taxes := a.Add(b).MulRate(decimal.RequireFromString("0.09"))

		assert.Equal(t, "48.60", taxes.String())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "37.50", kernel.MoneyFromFloat(12.5).MulInt(3).String())
	})

	t.Run("should take percent", func(t *testing.T) {
		assert.Equal(t, "240.00", kernel.MoneyFromFloat(1200).Percent(decimal.NewFromInt(20)).String())
	})

	t.Run("should pick minimum", func(t *testing.T) {
		assert.True(t, a.Min(b).IsEqual(b))
		assert.True(t, b.Min(a).IsEqual(b))
	})

	t.Run("should compare", func(t *testing.T) {
		assert.True(t, b.LessThan(a))
		assert.True(t, a.GreaterThan(b))
		assert.True(t, kernel.ZeroMoney().IsZero())
		assert.True(t, a.IsPositive())
		assert.InDelta(t, 500.0, a.Float64(), 1e-9)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var m kernel.Money

		assert.Equal(t, "0.00", m.String())
		assert.Equal(t, "10.00", m.Add(kernel.MoneyFromFloat(10)).String())
	})
}
