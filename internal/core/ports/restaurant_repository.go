package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// RestaurantCapacityRepository mutates the restaurant's concurrent order counter.
type RestaurantCapacityRepository interface {
	// IncrementOrders adds one order, conditioned on the capacity ceiling
	// (0 means unlimited). A full restaurant returns *errs.ConflictError.
	IncrementOrders(ctx context.Context, restaurantID kernel.UUID) error

	// DecrementOrders removes one order, never going below zero.
	DecrementOrders(ctx context.Context, restaurantID kernel.UUID) error

	// ReconcileOrderCounts recomputes every counter from the non-terminal orders
	// and returns how many restaurants were corrected.
	ReconcileOrderCounts(ctx context.Context) (int64, error)
}
