// Package postgres provides the GORM-based Unit of Work and the schema migration.
// The Unit of Work owns one database transaction per business operation, hands
// out repositories bound to it and publishes order status events once the
// transaction has committed.
//
// Key Features:
//   - Transaction management across the order, promo, loyalty, driver and
//     capacity repositories
//   - Savepoint-scoped side effects that may fail without aborting the transaction
//   - Aggregate tracking; status events of tracked orders are published after commit
//   - Proper isolation between concurrent operations
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db, notifier, logger, metrics)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	// ... transition
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	_ = uow.SideEffect(ctx, "capacity_decrement", func(ctx context.Context) error {
//	    return uow.RestaurantCapacityRepository().DecrementOrders(ctx, o.RestaurantID())
//	})
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Orders use optimistic versions; loyalty accounts are row-locked
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"foodorder/internal/adapters/out/postgres/driverrepo"
	"foodorder/internal/adapters/out/postgres/loyaltyrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/promorepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/metrics"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that raise status events.
type eventSource interface {
	PullEvents() []order.StatusChanged
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	notifier ports.StatusNotifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A nil notifier disables event publishing.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, kafkaNotifier, logger, m)
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:       db,
		notifier: notifier,
		logger:   logger.With("component", "UnitOfWork"),
		metrics:  m,
	}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		notifier:          f.notifier,
		logger:            f.logger,
		metrics:           f.metrics,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
//
// Repositories obtained before Begin run against the plain connection; those
// obtained after Begin run inside the transaction. Handlers therefore call the
// repository accessors after Begin.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	notifier          ports.StatusNotifier
	logger            *slog.Logger
	metrics           *metrics.Metrics
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction and then publishes the status events of every
// tracked order. Publish failures are logged and counted, never returned.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.discardTracked()
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards all changes made within the current transaction together with
// the events of tracked aggregates.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.discardTracked()
	return err
}

// SideEffect runs fn between SAVEPOINT name and, on failure, ROLLBACK TO SAVEPOINT
// name. The transaction stays usable either way.
func (uow *GormUnitOfWork) SideEffect(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.tx.SavePoint(name).Error; err != nil {
		return fmt.Errorf("savepoint %s: %w", name, err)
	}

	if err := fn(ctx); err != nil {
		if rbErr := uow.tx.RollbackTo(name).Error; rbErr != nil {
			return fmt.Errorf("rollback to savepoint %s: %w (after: %w)", name, rbErr, err)
		}
		return err
	}

	return nil
}

// OrderRepository provides access to order persistence within the unit of work.
// Added and updated orders are tracked for event publishing.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PromoRepository provides access to promo codes within the unit of work.
func (uow *GormUnitOfWork) PromoRepository() ports.PromoRepository {
	return promorepo.NewGormPromoRepository(uow.conn())
}

// LoyaltyRepository provides access to loyalty accounts and the ledger within the
// unit of work.
func (uow *GormUnitOfWork) LoyaltyRepository() ports.LoyaltyRepository {
	return loyaltyrepo.NewGormLoyaltyRepository(uow.conn())
}

// DriverRepository provides access to drivers within the unit of work.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

// RestaurantCapacityRepository provides access to the capacity counters within the
// unit of work.
func (uow *GormUnitOfWork) RestaurantCapacityRepository() ports.RestaurantCapacityRepository {
	return restaurantrepo.NewGormCapacityRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// It is called by repository implementations when aggregates are added or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for _, tracked := range uow.trackedAggregates {
		if tracked.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	for _, t := range tracked {
		source, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		for _, event := range source.PullEvents() {
			if uow.notifier == nil {
				continue
			}
			if err := uow.notifier.NotifyStatusChanged(ctx, event); err != nil {
				uow.logger.ErrorContext(ctx, "status notification failed",
					"order_id", event.OrderID.String(),
					"status", event.Status.String(),
					"error", err)
				uow.metrics.NotificationFailed()
			}
		}
	}
}

func (uow *GormUnitOfWork) discardTracked() {
	for _, t := range uow.trackedAggregates {
		if source, ok := t.Aggregate.(eventSource); ok {
			source.PullEvents()
		}
	}
	uow.trackedAggregates = make([]trackedAggregate, 0)
}
