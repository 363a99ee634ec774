package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// DispatchOrderCommandHandler assigns a driver chosen by an admin. The driver must
// exist, be active and on shift, and hold no other active order.
type DispatchOrderCommandHandler struct {
	lifecycle OrderLifecycle
}

// NewDispatchOrderCommandHandler creates a handler for admin dispatch.
func NewDispatchOrderCommandHandler(lifecycle OrderLifecycle) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{lifecycle: lifecycle}
}

// Handle processes the dispatch and returns the assigned order.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(),
		func(ctx context.Context, uow OrderLifecycleUoW, o *order.Order, now time.Time) error {
			d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
			if err != nil {
				return err
			}
			if err = d.ValidateDispatchable(); err != nil {
				return err
			}

			if err = o.Dispatch(cmd.Admin(), cmd.DriverID(), cmd.Note(), now); err != nil {
				return err
			}

			return ensureDriverFree(ctx, uow, cmd.DriverID(), nil)
		})
}
