package services_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var awardTime = time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)

func TestLoyaltyAwarder_Award(t *testing.T) {
	awarder := services.NewLoyaltyAwarder(services.DefaultLoyaltyPolicy())

	t.Run("bronze customer earns floor of 5 percent", func(t *testing.T) {
		account, _ := loyalty.NewAccount(kernel.NewUUID(), awardTime)
		orderID := kernel.NewUUID()

		res, err := awarder.Award(account, orderID, kernel.MoneyFromFloat(300), awardTime)

		require.NoError(t, err)
		assert.Equal(t, services.AwardOutcomeAwarded, res.Outcome)
		assert.Equal(t, 15, res.Coins)
		assert.Equal(t, 15, account.Balance())
		require.NotNil(t, res.Transaction)
		assert.Equal(t, loyalty.Earned, res.Transaction.Type())
		assert.Equal(t, 15, res.Transaction.BalanceAfter())
		assert.True(t, res.Transaction.OrderID().IsEqual(orderID))
		require.NotNil(t, res.Transaction.ExpiresAt())
		assert.Equal(t, awardTime.Add(365*24*time.Hour), *res.Transaction.ExpiresAt())
	})

	t.Run("multiplier uses tier before the award", func(t *testing.T) {
		account, _ := loyalty.RestoreAccount(kernel.NewUUID(), 10, 1990, 1980, awardTime)

		res, err := awarder.Award(account, kernel.NewUUID(), kernel.MoneyFromFloat(999.99), awardTime)

		require.NoError(t, err)
		// floor(floor(49.9995) × 1.25) = floor(61.25)
		assert.Equal(t, 61, res.Coins)
		assert.Equal(t, loyalty.Gold, account.Tier())
	})

	t.Run("coins follow the floor formula for every tier", func(t *testing.T) {
		testCases := []struct {
			tier   loyalty.Tier
			amount float64
			coins  int
		}{
			{loyalty.Bronze, 300, 15},
			{loyalty.Silver, 333.33, 20},
			{loyalty.Gold, 1010, 75},
			{loyalty.Platinum, 101, 10},
		}
		for _, tc := range testCases {
			assert.Equal(t, tc.coins, awarder.CoinsFor(tc.tier, kernel.MoneyFromFloat(tc.amount)), tc.tier)
		}
	})

	t.Run("below threshold is a no-op", func(t *testing.T) {
		account, _ := loyalty.NewAccount(kernel.NewUUID(), awardTime)

		res, err := awarder.Award(account, kernel.NewUUID(), kernel.MoneyFromFloat(99.99), awardTime)

		require.NoError(t, err)
		assert.Equal(t, services.AwardOutcomeBelowThreshold, res.Outcome)
		assert.Nil(t, res.Transaction)
		assert.Equal(t, 0, account.Balance())
	})

	t.Run("invalid order id", func(t *testing.T) {
		account, _ := loyalty.NewAccount(kernel.NewUUID(), awardTime)

		_, err := awarder.Award(account, kernel.UUID{}, kernel.MoneyFromFloat(300), awardTime)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestLoyaltyAwarder_Redeem(t *testing.T) {
	awarder := services.NewLoyaltyAwarder(services.DefaultLoyaltyPolicy())

	t.Run("debits balance and returns discount", func(t *testing.T) {
		account, _ := loyalty.RestoreAccount(kernel.NewUUID(), 50, 50, 0, awardTime)

		tx, discount, err := awarder.Redeem(account, 20, awardTime)

		require.NoError(t, err)
		assert.Equal(t, -20, tx.Amount())
		assert.Equal(t, 30, tx.BalanceAfter())
		assert.Equal(t, "20.00", discount.String())
		assert.Equal(t, 20, account.TotalRedeemed())
	})

	t.Run("insufficient balance is a conflict", func(t *testing.T) {
		account, _ := loyalty.RestoreAccount(kernel.NewUUID(), 5, 5, 0, awardTime)

		_, _, err := awarder.Redeem(account, 6, awardTime)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 5, account.Balance())
	})
}

func TestLoyaltyAwarder_Expire(t *testing.T) {
	awarder := services.NewLoyaltyAwarder(services.DefaultLoyaltyPolicy())
	account, _ := loyalty.NewAccount(kernel.NewUUID(), awardTime)
	res, err := awarder.Award(account, kernel.NewUUID(), kernel.MoneyFromFloat(400), awardTime)
	require.NoError(t, err)
	_, _, err = awarder.Redeem(account, 15, awardTime)
	require.NoError(t, err)

	t.Run("not yet expired", func(t *testing.T) {
		_, err := awarder.Expire(account, res.Transaction, awardTime.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("expires remaining coins clamped to balance", func(t *testing.T) {
		later := awardTime.Add(366 * 24 * time.Hour)

		tx, err := awarder.Expire(account, res.Transaction, later)

		require.NoError(t, err)
		assert.Equal(t, loyalty.Expired, tx.Type())
		assert.Equal(t, -5, tx.Amount())
		assert.Equal(t, 0, tx.BalanceAfter())
		assert.Equal(t, 0, account.Balance())
	})
}
