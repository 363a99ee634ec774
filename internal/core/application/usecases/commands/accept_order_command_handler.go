package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler moves an order assigned to the driver to Picked.
type AcceptOrderCommandHandler struct {
	lifecycle OrderLifecycle
}

// NewAcceptOrderCommandHandler creates a handler for driver accepts.
func NewAcceptOrderCommandHandler(lifecycle OrderLifecycle) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{lifecycle: lifecycle}
}

// Handle processes the accept and returns the picked order.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd DriverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(),
		func(ctx context.Context, uow OrderLifecycleUoW, o *order.Order, now time.Time) error {
			if err := o.Accept(cmd.Driver(), now); err != nil {
				return err
			}
			id := o.ID()
			return ensureDriverFree(ctx, uow, cmd.Driver().ID(), &id)
		})
}
