// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composite it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SideEffectRunner runs best-effort work inside a savepoint of the current
	// transaction.
	SideEffectRunner interface {
		SideEffect(ctx context.Context, name string, fn func(ctx context.Context) error) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PromoRepoFactory provides access to promo repository within a transaction.
	PromoRepoFactory interface {
		PromoRepository() ports.PromoRepository
	}

	// LoyaltyRepoFactory provides access to loyalty repository within a transaction.
	LoyaltyRepoFactory interface {
		LoyaltyRepository() ports.LoyaltyRepository
	}

	// DriverRepoFactory provides access to driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CapacityRepoFactory provides access to the restaurant capacity counter within a transaction.
	CapacityRepoFactory interface {
		RestaurantCapacityRepository() ports.RestaurantCapacityRepository
	}

	// CreateOrderUoW spans the order insert, the promo usage counters and the
	// restaurant capacity counter.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		PromoRepoFactory
		CapacityRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderLifecycleUoW manages every status transition together with its
	// terminal side effects.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... transition, update
	//   _ = uow.SideEffect(ctx, "capacity_decrement", decrement)
	//
	//   err = uow.Commit(ctx)
	OrderLifecycleUoW interface {
		TxManager
		SideEffectRunner
		OrderRepoFactory
		DriverRepoFactory
		CapacityRepoFactory
		LoyaltyRepoFactory
	}

	// OrderLifecycleUoWFactory creates new lifecycle unit of work instances.
	OrderLifecycleUoWFactory interface {
		Create() OrderLifecycleUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// PromoUoW manages transactions for promo code administration.
	PromoUoW interface {
		TxManager
		PromoRepoFactory
	}

	// PromoUoWFactory creates new promo unit of work instances.
	PromoUoWFactory interface {
		Create() PromoUoW
	}

	// LoyaltyUoW manages transactions over loyalty accounts and their ledger.
	// Orders are read to re-run awards for delivered orders.
	LoyaltyUoW interface {
		TxManager
		OrderRepoFactory
		LoyaltyRepoFactory
	}

	// LoyaltyUoWFactory creates new loyalty unit of work instances.
	LoyaltyUoWFactory interface {
		Create() LoyaltyUoW
	}

	// CapacityUoW manages transactions over restaurant capacity counters.
	CapacityUoW interface {
		TxManager
		CapacityRepoFactory
	}

	// CapacityUoWFactory creates new capacity unit of work instances.
	CapacityUoWFactory interface {
		Create() CapacityUoW
	}
)
