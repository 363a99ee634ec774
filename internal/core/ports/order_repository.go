// Package ports defines the interfaces between the food order core and its
// adapters: repositories, the unit of work, and the external catalog and
// notification collaborators.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its initial history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a changed order and appends its unsaved history entries.
	// The write is conditioned on the version the order was loaded with; a stale
	// version returns *errs.VersionIsInvalidError. Giving a driver a second active
	// order returns *errs.ConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its full history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// HasActiveOrderForDriver reports whether the driver holds an order in
	// assigned, picked or en_route, other than except when it is set.
	HasActiveOrderForDriver(ctx context.Context, driverID kernel.UUID, except *kernel.UUID) (bool, error)

	// CountDeliveredForCustomer counts the customer's delivered orders.
	CountDeliveredForCustomer(ctx context.Context, customerID kernel.UUID) (int64, error)
}
