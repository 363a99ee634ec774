package commands

import (
	"context"

	"foodorder/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler persists a new driver. New drivers are active and
// off shift until they set their availability.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      Clock
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory, clock Clock) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the registration command.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), h.clock())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
