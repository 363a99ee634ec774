package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the domain events
	// of every tracked aggregate.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SideEffect runs fn inside a savepoint of the current transaction. When fn
	// fails, only its writes are rolled back and its error is returned; the
	// transaction stays usable.
	SideEffect(ctx context.Context, name string, fn func(ctx context.Context) error) error

	OrderRepository() OrderRepository
	PromoRepository() PromoRepository
	LoyaltyRepository() LoyaltyRepository
	DriverRepository() DriverRepository
	RestaurantCapacityRepository() RestaurantCapacityRepository
}
