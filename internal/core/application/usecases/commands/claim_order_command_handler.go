package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// ClaimOrderCommandHandler self-assigns a driver to a Ready, unassigned order.
//
// Two drivers racing for the same order both pass the in-memory check; the
// version-conditioned update lets exactly one win and the loser gets an
// "order already claimed" conflict.
type ClaimOrderCommandHandler struct {
	lifecycle OrderLifecycle
}

// NewClaimOrderCommandHandler creates a handler for driver claims.
func NewClaimOrderCommandHandler(lifecycle OrderLifecycle) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{lifecycle: lifecycle}
}

// Handle processes the claim and returns the assigned order.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd DriverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.lifecycle.run(ctx, cmd.OrderID(),
		func(ctx context.Context, uow OrderLifecycleUoW, o *order.Order, now time.Time) error {
			if err := o.Claim(cmd.Driver(), now); err != nil {
				return err
			}
			return ensureDriverFree(ctx, uow, cmd.Driver().ID(), nil)
		})
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return nil, errs.NewConflictErrorWithCause("order", "already claimed", err)
	}

	return o, err
}
