package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler applies any state machine edge allowed for the
// actor. A driver reaching Assigned or Picked is held to one active order.
type TransitionOrderCommandHandler struct {
	lifecycle OrderLifecycle
}

// NewTransitionOrderCommandHandler creates a handler for generic transitions.
func NewTransitionOrderCommandHandler(lifecycle OrderLifecycle) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{lifecycle: lifecycle}
}

// Handle processes the transition and returns the updated order.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.lifecycle.run(ctx, cmd.OrderID(),
		func(ctx context.Context, uow OrderLifecycleUoW, o *order.Order, now time.Time) error {
			if err := o.Transition(cmd.Actor(), cmd.Target(), cmd.Note(), now); err != nil {
				return err
			}

			if cmd.Actor().Role() != order.RoleDriver {
				return nil
			}

			switch cmd.Target() {
			case order.Assigned:
				return ensureDriverFree(ctx, uow, cmd.Actor().ID(), nil)
			case order.Picked:
				id := o.ID()
				return ensureDriverFree(ctx, uow, cmd.Actor().ID(), &id)
			default:
				return nil
			}
		})
}
