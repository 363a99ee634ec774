package services

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LoyaltyPolicy holds the tunables of the loyalty programme.
type LoyaltyPolicy struct {
	// EarnRate is the fraction of the order amount converted into base coins.
	EarnRate decimal.Decimal
	// MinOrderAmount is the smallest order total that earns coins.
	MinOrderAmount kernel.Money
	// CoinValue is the discount one redeemed coin is worth.
	CoinValue kernel.Money
	// ExpiryWindow is how long earned coins stay valid.
	ExpiryWindow time.Duration
}

// DefaultLoyaltyPolicy earns 5% from 100.00, values a coin at 1.00 and expires
// coins after 365 days.
func DefaultLoyaltyPolicy() LoyaltyPolicy {
	return LoyaltyPolicy{
		EarnRate:       decimal.RequireFromString("0.05"),
		MinOrderAmount: kernel.MoneyFromFloat(100),
		CoinValue:      kernel.MoneyFromFloat(1),
		ExpiryWindow:   365 * 24 * time.Hour,
	}
}

// AwardOutcome tells what an award attempt did.
type AwardOutcome int

const (
	// AwardOutcomeAwarded means coins were credited and an earned entry was created.
	AwardOutcomeAwarded AwardOutcome = iota + 1
	// AwardOutcomeBelowThreshold means the order was too small to earn coins.
	AwardOutcomeBelowThreshold
	// AwardOutcomeAlreadyAwarded means the order already has an earned entry.
	AwardOutcomeAlreadyAwarded
)

func (o AwardOutcome) String() string {
	switch o {
	case AwardOutcomeAwarded:
		return "awarded"
	case AwardOutcomeBelowThreshold:
		return "below_threshold"
	case AwardOutcomeAlreadyAwarded:
		return "already_awarded"
	default:
		return "unknown"
	}
}

// AwardResult is the outcome of Award.
type AwardResult struct {
	Outcome     AwardOutcome
	Coins       int
	Transaction *loyalty.Transaction
}

// LoyaltyAwarder is a domain service computing coin awards, redemptions and
// expiries against a loyalty account. Idempotency per order is enforced by the
// caller through storage.
type LoyaltyAwarder struct {
	policy LoyaltyPolicy
}

// NewLoyaltyAwarder creates an awarder for a policy.
func NewLoyaltyAwarder(policy LoyaltyPolicy) LoyaltyAwarder {
	return LoyaltyAwarder{policy: policy}
}

// CoinsFor returns floor(floor(amount × earnRate) × tierMultiplier).
func (a LoyaltyAwarder) CoinsFor(tier loyalty.Tier, amount kernel.Money) int {
	base := amount.Decimal().Mul(a.policy.EarnRate).Floor()
	return int(base.Mul(tier.Multiplier()).Floor().IntPart())
}

// Award credits coins for a delivered order using the account's current tier.
//
// Parameters:
//   - account: the customer's account, mutated on award
//   - orderID: the delivered order, recorded on the earned entry
//   - orderAmount: the final order total
//   - now: award time; the entry expires at now + ExpiryWindow
//
// Returns:
//   - AwardResult: AwardOutcomeBelowThreshold with no entry when the amount is
//     below MinOrderAmount or earns zero coins, AwardOutcomeAwarded otherwise
//   - error: validation errors only
//
// Example:
//
//	// bronze account, order total 300.00, earn rate 0.05
//	res, _ := awarder.Award(account, orderID, kernel.MoneyFromFloat(300), now)
//	// res.Coins == 15
func (a LoyaltyAwarder) Award(
	account *loyalty.Account,
	orderID kernel.UUID,
	orderAmount kernel.Money,
	now time.Time,
) (AwardResult, error) {
	if err := account.Validate(); err != nil {
		return AwardResult{}, err
	}
	if err := orderID.Validate(); err != nil {
		return AwardResult{}, err
	}

	if orderAmount.LessThan(a.policy.MinOrderAmount) {
		return AwardResult{Outcome: AwardOutcomeBelowThreshold}, nil
	}

	tier := account.Tier()
	coins := a.CoinsFor(tier, orderAmount)
	if coins <= 0 {
		return AwardResult{Outcome: AwardOutcomeBelowThreshold}, nil
	}

	if err := account.Credit(coins, now); err != nil {
		return AwardResult{}, err
	}

	expiresAt := now.UTC().Add(a.policy.ExpiryWindow)
	tx, err := loyalty.NewTransaction(loyalty.TransactionParams{
		ID:           kernel.NewUUID(),
		UserID:       account.UserID(),
		OrderID:      &orderID,
		Type:         loyalty.Earned,
		Amount:       coins,
		BalanceAfter: account.Balance(),
		ExpiresAt:    &expiresAt,
		Metadata: map[string]string{
			"order_amount": orderAmount.String(),
			"tier":         string(tier),
			"multiplier":   tier.Multiplier().String(),
		},
		CreatedAt: now,
	})
	if err != nil {
		return AwardResult{}, err
	}

	return AwardResult{Outcome: AwardOutcomeAwarded, Coins: coins, Transaction: tx}, nil
}

// Redeem debits coins and returns the ledger entry and the discount they are worth.
//
// Returns:
//   - *loyalty.Transaction: redeemed entry with a negative amount
//   - kernel.Money: coins × CoinValue
//   - error: out-of-range for non-positive coins, conflict for an insufficient balance
func (a LoyaltyAwarder) Redeem(account *loyalty.Account, coins int, now time.Time) (*loyalty.Transaction, kernel.Money, error) {
	if err := account.Validate(); err != nil {
		return nil, kernel.Money{}, err
	}
	if err := account.Debit(coins, now); err != nil {
		return nil, kernel.Money{}, err
	}

	tx, err := loyalty.NewTransaction(loyalty.TransactionParams{
		ID:           kernel.NewUUID(),
		UserID:       account.UserID(),
		Type:         loyalty.Redeemed,
		Amount:       -coins,
		BalanceAfter: account.Balance(),
		Metadata:     map[string]string{"coin_value": a.policy.CoinValue.String()},
		CreatedAt:    now,
	})
	if err != nil {
		return nil, kernel.Money{}, err
	}

	return tx, a.policy.CoinValue.MulInt(coins), nil
}

// Expire removes the coins of an earned entry that passed its expiry, clamped to
// the current balance, and returns the expired entry. A zero-amount entry is still
// returned so the earned entry is not processed again.
func (a LoyaltyAwarder) Expire(account *loyalty.Account, earned *loyalty.Transaction, now time.Time) (*loyalty.Transaction, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if earned.Type() != loyalty.Earned {
		return nil, errs.NewValueIsInvalidErrorWithCause("transaction", fmt.Errorf("%s entries do not expire", earned.Type()))
	}
	if earned.ExpiresAt() == nil || now.Before(*earned.ExpiresAt()) {
		return nil, errs.NewConflictError("loyalty transaction "+earned.ID().String(), "has not expired yet")
	}

	removed := account.Expire(earned.Amount(), now)

	return loyalty.NewTransaction(loyalty.TransactionParams{
		ID:           kernel.NewUUID(),
		UserID:       account.UserID(),
		OrderID:      earned.OrderID(),
		Type:         loyalty.Expired,
		Amount:       -removed,
		BalanceAfter: account.Balance(),
		Metadata:     map[string]string{"earned_transaction_id": earned.ID().String()},
		CreatedAt:    now,
	})
}
