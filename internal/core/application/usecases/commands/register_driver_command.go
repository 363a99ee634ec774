package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("driver name")
)

// RegisterDriverCommand represents an admin onboarding a driver. The driver id is
// the identity the driver later presents as actor.
//
// Example:
//
//	cmd, err := NewRegisterDriverCommand(admin, driverID, "Jane Doe")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register driver: %w", err)
//	}
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
// Only admins may register drivers; the name must not be empty.
func NewRegisterDriverCommand(admin order.Actor, driverID kernel.UUID, name string) (RegisterDriverCommand, error) {
	if err := admin.Validate(); err != nil {
		return RegisterDriverCommand{}, err
	}
	if admin.Role() != order.RoleAdmin {
		return RegisterDriverCommand{}, errs.NewForbiddenError(admin.Role().String(), "register drivers")
	}

	command := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the driver identity.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c *RegisterDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}
