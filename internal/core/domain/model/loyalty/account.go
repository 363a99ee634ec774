package loyalty

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account was not created via NewAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the loyalty balance of one user.
//
// Invariants:
//   - balance never goes below zero
//   - tier is TierFor(totalEarned)
type Account struct {
	userID        kernel.UUID
	balance       int
	totalEarned   int
	totalRedeemed int
	tier          Tier
	lastUpdated   time.Time
	guard         guard.ConstructorGuard
}

// NewAccount opens an empty bronze account.
func NewAccount(userID kernel.UUID, now time.Time) (*Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		userID:      userID,
		tier:        Bronze,
		lastUpdated: now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount rebuilds an account from storage. The tier is recomputed from
// totalEarned rather than trusted.
func RestoreAccount(userID kernel.UUID, balance, totalEarned, totalRedeemed int, lastUpdated time.Time) (*Account, error) {
	validationErrs := []error{userID.Validate()}
	if balance < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("balance", balance, 0, "unbounded"))
	}
	if totalEarned < 0 || totalRedeemed < 0 {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("totals", errors.New("must not be negative")))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return &Account{
		userID:        userID,
		balance:       balance,
		totalEarned:   totalEarned,
		totalRedeemed: totalRedeemed,
		tier:          TierFor(totalEarned),
		lastUpdated:   lastUpdated,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the account was built by NewAccount or RestoreAccount.
func (a *Account) Validate() error {
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// Credit adds coins to the balance and lifetime total and recomputes the tier.
func (a *Account) Credit(coins int, now time.Time) error {
	if coins <= 0 {
		return errs.NewValueIsOutOfRangeError("coins", coins, 1, "unbounded")
	}

	a.balance += coins
	a.totalEarned += coins
	a.tier = TierFor(a.totalEarned)
	a.lastUpdated = now.UTC()
	return nil
}

// Debit redeems coins. The balance must cover the whole amount.
func (a *Account) Debit(coins int, now time.Time) error {
	if coins <= 0 {
		return errs.NewValueIsOutOfRangeError("coins", coins, 1, "unbounded")
	}
	if coins > a.balance {
		return errs.NewConflictError("loyalty balance", fmt.Sprintf("of %d coins is insufficient for %d", a.balance, coins))
	}

	a.balance -= coins
	a.totalRedeemed += coins
	a.lastUpdated = now.UTC()
	return nil
}

// Expire removes up to coins from the balance and returns how many were removed.
// Expiry does not count as redemption and does not lower the tier.
func (a *Account) Expire(coins int, now time.Time) int {
	if coins <= 0 {
		return 0
	}

	removed := min(coins, a.balance)
	a.balance -= removed
	a.lastUpdated = now.UTC()
	return removed
}

func (a *Account) UserID() kernel.UUID {
	return a.userID
}

func (a *Account) Balance() int {
	return a.balance
}

func (a *Account) TotalEarned() int {
	return a.totalEarned
}

func (a *Account) TotalRedeemed() int {
	return a.totalRedeemed
}

func (a *Account) Tier() Tier {
	return a.tier
}

func (a *Account) LastUpdated() time.Time {
	return a.lastUpdated
}
