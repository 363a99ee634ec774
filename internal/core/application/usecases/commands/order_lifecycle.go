package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/metrics"
)

// transitionStep mutates a loaded order inside the lifecycle transaction.
type transitionStep func(ctx context.Context, uow OrderLifecycleUoW, o *order.Order, now time.Time) error

// OrderLifecycle is shared by every handler that moves an order through the
// state machine. It loads the order, applies one step, writes it back with its
// version check and runs the side effects of terminal states in savepoints.
type OrderLifecycle struct {
	uowFactory OrderLifecycleUoWFactory
	awarder    services.LoyaltyAwarder
	clock      Clock
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewOrderLifecycle creates the lifecycle shared by the transition handlers.
func NewOrderLifecycle(
	uowFactory OrderLifecycleUoWFactory,
	awarder services.LoyaltyAwarder,
	clock Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) OrderLifecycle {
	return OrderLifecycle{
		uowFactory: uowFactory,
		awarder:    awarder,
		clock:      clock,
		logger:     logger.With("component", "OrderLifecycle"),
		metrics:    m,
	}
}

func (l OrderLifecycle) run(ctx context.Context, orderID kernel.UUID, step transitionStep) (*order.Order, error) {
	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := o.Status()
	now := l.clock()
	if err = step(ctx, uow, o, now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if to := o.Status(); to != from && to.IsTerminal() {
		l.runTerminalEffects(ctx, uow, o, now)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	l.metrics.TransitionAccepted(o.Status().String())
	return o, nil
}

// ensureDriverFree rejects a driver that already holds an active order other
// than except.
func ensureDriverFree(ctx context.Context, uow OrderLifecycleUoW, driverID kernel.UUID, except *kernel.UUID) error {
	busy, err := uow.OrderRepository().HasActiveOrderForDriver(ctx, driverID, except)
	if err != nil {
		return err
	}
	if busy {
		return errs.NewConflictError("driver "+driverID.String(), "already has an active order")
	}
	return nil
}
