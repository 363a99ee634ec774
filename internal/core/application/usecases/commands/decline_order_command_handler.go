package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// DeclineOrderCommandHandler returns an order assigned to the driver to the
// unassigned Ready pool with the reason recorded in history.
type DeclineOrderCommandHandler struct {
	lifecycle OrderLifecycle
}

// NewDeclineOrderCommandHandler creates a handler for driver declines.
func NewDeclineOrderCommandHandler(lifecycle OrderLifecycle) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{lifecycle: lifecycle}
}

// Handle processes the decline and returns the order back in Ready.
func (h *DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DriverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(),
		func(_ context.Context, _ OrderLifecycleUoW, o *order.Order, now time.Time) error {
			return o.Decline(cmd.Driver(), cmd.Reason(), now)
		})
}
