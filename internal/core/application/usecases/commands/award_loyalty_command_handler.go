package commands

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/metrics"
)

// AwardLoyaltyCommandHandler awards coins for a delivered order. Calling it for an
// order that was already awarded reports AwardOutcomeAlreadyAwarded and changes
// nothing.
type AwardLoyaltyCommandHandler struct {
	uowFactory LoyaltyUoWFactory
	awarder    services.LoyaltyAwarder
	clock      Clock
	metrics    *metrics.Metrics
}

// NewAwardLoyaltyCommandHandler creates a handler for award retries.
func NewAwardLoyaltyCommandHandler(
	uowFactory LoyaltyUoWFactory,
	awarder services.LoyaltyAwarder,
	clock Clock,
	m *metrics.Metrics,
) AwardLoyaltyCommandHandler {
	return AwardLoyaltyCommandHandler{
		uowFactory: uowFactory,
		awarder:    awarder,
		clock:      clock,
		metrics:    m,
	}
}

// Handle processes the award.
func (h *AwardLoyaltyCommandHandler) Handle(ctx context.Context, cmd AwardLoyaltyCommand) (services.AwardResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.AwardResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.AwardResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return services.AwardResult{}, err
	}
	if o.Status() != order.Delivered {
		return services.AwardResult{}, errs.NewConflictError(
			"order "+o.ID().String(),
			fmt.Sprintf("is %s, only delivered orders earn coins", o.Status()),
		)
	}

	result, err := awardLoyalty(ctx, uow.LoyaltyRepository(), h.awarder, o, h.clock())
	if errors.Is(err, errLoyaltyAlreadyAwarded) {
		return result, nil
	}
	if err != nil {
		return services.AwardResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.AwardResult{}, err
	}

	h.metrics.CoinsAwarded(result.Coins)
	return result, nil
}
