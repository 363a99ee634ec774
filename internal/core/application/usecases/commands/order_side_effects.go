package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

const (
	effectCapacityDecrement = "capacity_decrement"
	effectLoyaltyAward      = "loyalty_award"
)

var errLoyaltyAlreadyAwarded = errors.New("loyalty coins already awarded for order")

// runTerminalEffects never fails the transition. Each effect runs in its own
// savepoint so a failure discards only that effect's writes.
func (l OrderLifecycle) runTerminalEffects(ctx context.Context, uow OrderLifecycleUoW, o *order.Order, now time.Time) {
	err := uow.SideEffect(ctx, effectCapacityDecrement, func(ctx context.Context) error {
		return uow.RestaurantCapacityRepository().DecrementOrders(ctx, o.RestaurantID())
	})
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to release restaurant capacity",
			"order_id", o.ID().String(),
			"restaurant_id", o.RestaurantID().String(),
			"error", err,
		)
		l.metrics.SideEffectFailed(effectCapacityDecrement)
	}

	if o.Status() != order.Delivered {
		return
	}

	var result services.AwardResult
	err = uow.SideEffect(ctx, effectLoyaltyAward, func(ctx context.Context) error {
		var awardErr error
		result, awardErr = awardLoyalty(ctx, uow.LoyaltyRepository(), l.awarder, o, now)
		return awardErr
	})

	switch {
	case err == nil:
		l.logAward(ctx, o, result)
	case errors.Is(err, errLoyaltyAlreadyAwarded):
		l.logger.InfoContext(ctx, "loyalty coins already awarded", "order_id", o.ID().String())
	default:
		l.logger.ErrorContext(ctx, "failed to award loyalty coins",
			"order_id", o.ID().String(),
			"customer_id", o.CustomerID().String(),
			"error", err,
		)
		l.metrics.SideEffectFailed(effectLoyaltyAward)
	}
}

func (l OrderLifecycle) logAward(ctx context.Context, o *order.Order, result services.AwardResult) {
	if result.Outcome != services.AwardOutcomeAwarded {
		l.logger.InfoContext(ctx, "no loyalty coins awarded",
			"order_id", o.ID().String(),
			"outcome", result.Outcome.String(),
		)
		return
	}

	l.metrics.CoinsAwarded(result.Coins)
	l.logger.InfoContext(ctx, "loyalty coins awarded",
		"order_id", o.ID().String(),
		"customer_id", o.CustomerID().String(),
		"coins", result.Coins,
	)
}

// awardLoyalty credits the customer for a delivered order at most once.
// The existence check covers sequential retries; the unique ledger index covers
// concurrent ones and is reported as errLoyaltyAlreadyAwarded so the caller's
// savepoint discards the account update.
func awardLoyalty(
	ctx context.Context,
	repo ports.LoyaltyRepository,
	awarder services.LoyaltyAwarder,
	o *order.Order,
	now time.Time,
) (services.AwardResult, error) {
	exists, err := repo.HasOrderTransaction(ctx, o.ID(), loyalty.Earned)
	if err != nil {
		return services.AwardResult{}, err
	}
	if exists {
		return services.AwardResult{Outcome: services.AwardOutcomeAlreadyAwarded}, nil
	}

	if err = repo.EnsureAccount(ctx, o.CustomerID(), now); err != nil {
		return services.AwardResult{}, err
	}

	account, err := repo.GetAccountForUpdate(ctx, o.CustomerID())
	if err != nil {
		return services.AwardResult{}, err
	}

	result, err := awarder.Award(account, o.ID(), o.Pricing().Total, now)
	if err != nil {
		return services.AwardResult{}, err
	}
	if result.Outcome != services.AwardOutcomeAwarded {
		return result, nil
	}

	if err = repo.SaveAccount(ctx, account); err != nil {
		return services.AwardResult{}, err
	}

	if err = repo.AppendTransaction(ctx, result.Transaction); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return services.AwardResult{Outcome: services.AwardOutcomeAlreadyAwarded}, errLoyaltyAlreadyAwarded
		}
		return services.AwardResult{}, err
	}

	return result, nil
}
