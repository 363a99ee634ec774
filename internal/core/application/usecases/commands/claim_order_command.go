package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDriverOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"DriverOrderCommand must be created via NewDriverOrderCommand constructor",
)

// DriverOrderCommand is a driver acting on one order: claiming, accepting or
// declining it.
type DriverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	driver  order.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewDriverOrderCommand creates a driver command. The actor must be a driver;
// reason is only used when declining.
func NewDriverOrderCommand(orderID kernel.UUID, driver order.Actor, reason string) (DriverOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), driver.Validate()); err != nil {
		return DriverOrderCommand{}, err
	}
	if driver.Role() != order.RoleDriver {
		return DriverOrderCommand{}, errs.NewForbiddenError(driver.Role().String(), "act as a driver")
	}

	return DriverOrderCommand{
		orderID: orderID,
		driver:  driver,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDriverOrderCommandIsNotConstructed)
}

// OrderID returns the order the driver acts on.
func (c DriverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Driver returns the acting driver.
func (c DriverOrderCommand) Driver() order.Actor {
	return c.driver
}

// Reason returns the decline reason.
func (c DriverOrderCommand) Reason() string {
	return c.reason
}
