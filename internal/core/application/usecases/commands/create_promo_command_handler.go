package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/promo"
)

// CreatePromoCommandHandler validates and stores a new promo code.
// A code that already exists is a conflict.
type CreatePromoCommandHandler struct {
	uowFactory PromoUoWFactory
	clock      Clock
}

// NewCreatePromoCommandHandler creates a handler for promo creation.
func NewCreatePromoCommandHandler(uowFactory PromoUoWFactory, clock Clock) CreatePromoCommandHandler {
	return CreatePromoCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the command and returns the stored promo code.
func (h *CreatePromoCommandHandler) Handle(ctx context.Context, cmd CreatePromoCommand) (*promo.PromoCode, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	def := cmd.Definition()
	code, err := promo.NewPromoCode(promo.Params{
		ID:            kernel.NewUUID(),
		Code:          def.Code,
		Description:   def.Description,
		Type:          def.Type,
		Value:         def.Value,
		MaxDiscount:   def.MaxDiscount,
		MinOrderValue: def.MinOrderValue,
		ValidFrom:     def.ValidFrom,
		ValidUntil:    def.ValidUntil,
		UsageLimit:    def.UsageLimit,
		ApplicableFor: def.ApplicableFor,
		Restaurants:   def.Restaurants,
		CreatedBy:     cmd.Admin().ID(),
		CreatedAt:     h.clock(),
	})
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PromoRepository().Add(ctx, code); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return code, nil
}
