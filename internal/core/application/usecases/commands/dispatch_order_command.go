package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand is an admin assigning a named driver to a Ready order.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	admin    order.Actor
	driverID kernel.UUID
	note     string

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a dispatch command. The actor must be an admin.
func NewDispatchOrderCommand(
	orderID kernel.UUID,
	admin order.Actor,
	driverID kernel.UUID,
	note string,
) (DispatchOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), admin.Validate(), driverID.Validate()); err != nil {
		return DispatchOrderCommand{}, err
	}
	if admin.Role() != order.RoleAdmin {
		return DispatchOrderCommand{}, errs.NewForbiddenError(admin.Role().String(), "dispatch drivers")
	}

	return DispatchOrderCommand{
		orderID:  orderID,
		admin:    admin,
		driverID: driverID,
		note:     strings.TrimSpace(note),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Admin returns the dispatching admin.
func (c DispatchOrderCommand) Admin() order.Actor {
	return c.admin
}

// DriverID returns the driver to assign.
func (c DispatchOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Note returns the optional dispatch note.
func (c DispatchOrderCommand) Note() string {
	return c.note
}
