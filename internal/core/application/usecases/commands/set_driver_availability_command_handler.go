package commands

import (
	"context"

	"foodorder/internal/core/domain/model/driver"
)

// SetDriverAvailabilityCommandHandler toggles whether a driver can be dispatched.
// Going off shift does not release an order the driver already holds.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      Clock
}

// NewSetDriverAvailabilityCommandHandler creates a handler for availability changes.
func NewSetDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory, clock Clock) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the availability change and returns the updated driver.
func (h *SetDriverAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetDriverAvailabilityCommand,
) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = d.SetAvailability(cmd.Available(), h.clock()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
