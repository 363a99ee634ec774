package commands

import (
	"context"

	"foodorder/internal/core/domain/model/promo"
)

// TogglePromoCommandHandler flips the active flag of a promo code. Orders that
// already applied the code keep their discount.
type TogglePromoCommandHandler struct {
	uowFactory PromoUoWFactory
}

// NewTogglePromoCommandHandler creates a handler for promo toggling.
func NewTogglePromoCommandHandler(uowFactory PromoUoWFactory) TogglePromoCommandHandler {
	return TogglePromoCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the updated promo code.
func (h *TogglePromoCommandHandler) Handle(ctx context.Context, cmd TogglePromoCommand) (*promo.PromoCode, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	promoRepo := uow.PromoRepository()
	code, err := promoRepo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return nil, err
	}

	code.SetActive(cmd.Active())
	if err = promoRepo.SetActive(ctx, code); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return code, nil
}
