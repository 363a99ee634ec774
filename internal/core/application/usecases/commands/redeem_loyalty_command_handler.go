package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/services"
)

// RedeemResult is the outcome of a redemption.
type RedeemResult struct {
	Transaction *loyalty.Transaction
	// Discount is the money value of the redeemed coins.
	Discount kernel.Money
	Balance  int
}

// RedeemLoyaltyCommandHandler debits coins under a row lock on the account.
// An insufficient balance is a conflict and changes nothing.
type RedeemLoyaltyCommandHandler struct {
	uowFactory LoyaltyUoWFactory
	awarder    services.LoyaltyAwarder
	clock      Clock
}

// NewRedeemLoyaltyCommandHandler creates a handler for redemptions.
func NewRedeemLoyaltyCommandHandler(
	uowFactory LoyaltyUoWFactory,
	awarder services.LoyaltyAwarder,
	clock Clock,
) RedeemLoyaltyCommandHandler {
	return RedeemLoyaltyCommandHandler{
		uowFactory: uowFactory,
		awarder:    awarder,
		clock:      clock,
	}
}

// Handle processes the redemption.
func (h *RedeemLoyaltyCommandHandler) Handle(ctx context.Context, cmd RedeemLoyaltyCommand) (RedeemResult, error) {
	if err := cmd.Validate(); err != nil {
		return RedeemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RedeemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loyaltyRepo := uow.LoyaltyRepository()
	account, err := loyaltyRepo.GetAccountForUpdate(ctx, cmd.UserID())
	if err != nil {
		return RedeemResult{}, err
	}

	tx, discount, err := h.awarder.Redeem(account, cmd.Coins(), h.clock())
	if err != nil {
		return RedeemResult{}, err
	}

	if err = loyaltyRepo.SaveAccount(ctx, account); err != nil {
		return RedeemResult{}, err
	}
	if err = loyaltyRepo.AppendTransaction(ctx, tx); err != nil {
		return RedeemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RedeemResult{}, err
	}

	return RedeemResult{Transaction: tx, Discount: discount, Balance: account.Balance()}, nil
}
