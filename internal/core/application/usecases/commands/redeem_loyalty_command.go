package commands

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRedeemLoyaltyCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"RedeemLoyaltyCommand must be created via NewRedeemLoyaltyCommand constructor",
)

// RedeemLoyaltyCommand spends a customer's loyalty coins.
type RedeemLoyaltyCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	coins  int

	guard guard.ConstructorGuard
}

// NewRedeemLoyaltyCommand creates the command for the acting customer.
// coins must be positive.
func NewRedeemLoyaltyCommand(customer order.Actor, coins int) (RedeemLoyaltyCommand, error) {
	if err := customer.Validate(); err != nil {
		return RedeemLoyaltyCommand{}, err
	}
	if customer.Role() != order.RoleCustomer {
		return RedeemLoyaltyCommand{}, errs.NewForbiddenError(customer.Role().String(), "redeem loyalty coins")
	}
	if coins <= 0 {
		return RedeemLoyaltyCommand{}, errs.NewValueIsOutOfRangeError("coins", coins, 1, "balance")
	}

	return RedeemLoyaltyCommand{
		userID: customer.ID(),
		coins:  coins,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RedeemLoyaltyCommand) Validate() error {
	return c.guard.Validate(ErrRedeemLoyaltyCommandIsNotConstructed)
}

// UserID returns the redeeming customer.
func (c RedeemLoyaltyCommand) UserID() kernel.UUID {
	return c.userID
}

// Coins returns how many coins to redeem.
func (c RedeemLoyaltyCommand) Coins() int {
	return c.coins
}
