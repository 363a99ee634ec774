package commands

import (
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrTogglePromoCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"TogglePromoCommand must be created via NewTogglePromoCommand constructor",
)

// TogglePromoCommand activates or deactivates a promo code.
type TogglePromoCommand struct { //nolint:recvcheck //using for validation
	code   string
	active bool

	guard guard.ConstructorGuard
}

// NewTogglePromoCommand creates the command. Only admins may toggle promo codes.
func NewTogglePromoCommand(admin order.Actor, code string, active bool) (TogglePromoCommand, error) {
	if err := admin.Validate(); err != nil {
		return TogglePromoCommand{}, err
	}
	if admin.Role() != order.RoleAdmin {
		return TogglePromoCommand{}, errs.NewForbiddenError(admin.Role().String(), "toggle promo codes")
	}

	normalized, err := promo.NormalizeCode(code)
	if err != nil {
		return TogglePromoCommand{}, err
	}

	return TogglePromoCommand{
		code:   normalized,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TogglePromoCommand) Validate() error {
	return c.guard.Validate(ErrTogglePromoCommandIsNotConstructed)
}

// Code returns the normalized promo code.
func (c TogglePromoCommand) Code() string {
	return c.code
}

// Active returns the requested active flag.
func (c TogglePromoCommand) Active() bool {
	return c.active
}
