package commands

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand lets a driver go on or off shift.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetDriverAvailabilityCommand creates the command for the acting driver.
func NewSetDriverAvailabilityCommand(driver order.Actor, available bool) (SetDriverAvailabilityCommand, error) {
	if err := driver.Validate(); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}
	if driver.Role() != order.RoleDriver {
		return SetDriverAvailabilityCommand{}, errs.NewForbiddenError(driver.Role().String(), "change driver availability")
	}

	return SetDriverAvailabilityCommand{
		driverID:  driver.ID(),
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver changing shift.
func (c SetDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Available reports whether the driver goes on shift.
func (c SetDriverAvailabilityCommand) Available() bool {
	return c.available
}
