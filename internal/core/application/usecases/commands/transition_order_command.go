package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move an order to a target status on behalf of an
// actor. Restaurants confirm, prepare, ready and reject; customers cancel; drivers
// claim, accept, decline, start and complete delivery.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, restaurantActor, order.Confirmed, "")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	target  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition request. The note is optional
// and becomes the cancellation reason when cancelling.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	actor order.Actor,
	target order.Status,
	note string,
) (TransitionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), target.Validate()); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		note:    strings.TrimSpace(note),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who requests the transition.
func (c TransitionOrderCommand) Actor() order.Actor {
	return c.actor
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Note returns the optional note.
func (c TransitionOrderCommand) Note() string {
	return c.note
}
