package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/services"
)

// ExpireLoyaltyCoinsCommandHandler expires earned coins past their expiry. Each
// entry is expired in its own short transaction holding the account lock, so one
// failing entry does not block the rest of the batch.
type ExpireLoyaltyCoinsCommandHandler struct {
	uowFactory LoyaltyUoWFactory
	awarder    services.LoyaltyAwarder
	clock      Clock
}

// NewExpireLoyaltyCoinsCommandHandler creates a handler for coin expiry.
func NewExpireLoyaltyCoinsCommandHandler(
	uowFactory LoyaltyUoWFactory,
	awarder services.LoyaltyAwarder,
	clock Clock,
) ExpireLoyaltyCoinsCommandHandler {
	return ExpireLoyaltyCoinsCommandHandler{
		uowFactory: uowFactory,
		awarder:    awarder,
		clock:      clock,
	}
}

// Handle processes one batch and returns how many entries were expired.
// Per-entry failures are joined into the returned error.
func (h *ExpireLoyaltyCoinsCommandHandler) Handle(ctx context.Context, cmd ExpireLoyaltyCoinsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock()
	due, err := h.uowFactory.Create().LoyaltyRepository().ListExpiredUnprocessed(ctx, now, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	expired := 0
	var failures []error
	for _, earned := range due {
		if err = h.expireOne(ctx, earned, now); err != nil {
			failures = append(failures, fmt.Errorf("expire %s: %w", earned.ID(), err))
			continue
		}
		expired++
	}

	return expired, errors.Join(failures...)
}

func (h *ExpireLoyaltyCoinsCommandHandler) expireOne(ctx context.Context, earned *loyalty.Transaction, now time.Time) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loyaltyRepo := uow.LoyaltyRepository()
	account, err := loyaltyRepo.GetAccountForUpdate(ctx, earned.UserID())
	if err != nil {
		return err
	}

	entry, err := h.awarder.Expire(account, earned, now)
	if err != nil {
		return err
	}

	if err = loyaltyRepo.SaveAccount(ctx, account); err != nil {
		return err
	}
	if err = loyaltyRepo.AppendTransaction(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
