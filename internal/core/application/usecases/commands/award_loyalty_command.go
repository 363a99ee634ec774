package commands

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAwardLoyaltyCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"AwardLoyaltyCommand must be created via NewAwardLoyaltyCommand constructor",
)

// AwardLoyaltyCommand re-runs the loyalty award of a delivered order, for
// operators recovering from a failed best-effort award.
type AwardLoyaltyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAwardLoyaltyCommand creates the command. Only admins may re-run awards.
func NewAwardLoyaltyCommand(admin order.Actor, orderID kernel.UUID) (AwardLoyaltyCommand, error) {
	if err := admin.Validate(); err != nil {
		return AwardLoyaltyCommand{}, err
	}
	if admin.Role() != order.RoleAdmin {
		return AwardLoyaltyCommand{}, errs.NewForbiddenError(admin.Role().String(), "award loyalty coins")
	}
	if err := orderID.Validate(); err != nil {
		return AwardLoyaltyCommand{}, err
	}

	return AwardLoyaltyCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AwardLoyaltyCommand) Validate() error {
	return c.guard.Validate(ErrAwardLoyaltyCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c AwardLoyaltyCommand) OrderID() kernel.UUID {
	return c.orderID
}
