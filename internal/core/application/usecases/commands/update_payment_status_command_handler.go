package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// UpdatePaymentStatusCommandHandler records payment outcomes. It does not change
// the order status, so no status notification is emitted.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment updates.
func NewUpdatePaymentStatusCommandHandler(uowFactory OrderUoWFactory, clock Clock) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the payment update and returns the updated order.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.UpdatePayment(cmd.Status(), cmd.TransactionRef(), cmd.Gateway(), h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
