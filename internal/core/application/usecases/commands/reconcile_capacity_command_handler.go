package commands

import (
	"context"
)

// ReconcileCapacityCommandHandler corrects counters that drifted because a
// best-effort decrement failed.
type ReconcileCapacityCommandHandler struct {
	uowFactory CapacityUoWFactory
}

// NewReconcileCapacityCommandHandler creates a handler for capacity reconciliation.
func NewReconcileCapacityCommandHandler(uowFactory CapacityUoWFactory) ReconcileCapacityCommandHandler {
	return ReconcileCapacityCommandHandler{uowFactory: uowFactory}
}

// Handle recomputes the counters and returns how many restaurants were corrected.
func (h *ReconcileCapacityCommandHandler) Handle(ctx context.Context, cmd ReconcileCapacityCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	corrected, err := uow.RestaurantCapacityRepository().ReconcileOrderCounts(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return corrected, nil
}
