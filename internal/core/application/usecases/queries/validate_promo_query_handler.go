package queries

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/promo"
)

// PromoReader is the read side of the promo repository.
type PromoReader interface {
	GetByCode(ctx context.Context, code string) (*promo.PromoCode, error)
	UserUsage(ctx context.Context, promoID, userID kernel.UUID) (int, error)
}

// DeliveredOrderCounter tells whether a user has completed orders before.
type DeliveredOrderCounter interface {
	CountDeliveredForCustomer(ctx context.Context, customerID kernel.UUID) (int64, error)
}

// ValidatePromoQueryHandler runs the promo validator against stored usage.
type ValidatePromoQueryHandler struct {
	promos PromoReader
	orders DeliveredOrderCounter
	clock  func() time.Time
}

// NewValidatePromoQueryHandler creates a handler for promo validation.
func NewValidatePromoQueryHandler(
	promos PromoReader,
	orders DeliveredOrderCounter,
	clock func() time.Time,
) ValidatePromoQueryHandler {
	return ValidatePromoQueryHandler{promos: promos, orders: orders, clock: clock}
}

// Handle reports whether the code applies and the discount it would give.
// An unknown code is returned as *errs.ObjectNotFoundError; rules the code fails
// come back as an invalid response with the rejection reason.
func (h ValidatePromoQueryHandler) Handle(
	ctx context.Context,
	query ValidatePromoQuery,
) (ValidatePromoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidatePromoQueryResponse{}, err
	}

	pc, err := h.promos.GetByCode(ctx, query.Code())
	if err != nil {
		return ValidatePromoQueryResponse{}, err
	}

	uses, err := h.promos.UserUsage(ctx, pc.ID(), query.UserID())
	if err != nil {
		return ValidatePromoQueryResponse{}, err
	}

	delivered, err := h.orders.CountDeliveredForCustomer(ctx, query.UserID())
	if err != nil {
		return ValidatePromoQueryResponse{}, err
	}

	redeemer := promo.Redeemer{UserID: query.UserID(), Uses: uses, IsNewUser: delivered == 0}
	err = pc.IsValidFor(redeemer, query.OrderValue(), query.RestaurantID(), h.clock())

	var rejection *promo.RejectionError
	switch {
	case err == nil:
		return ValidatePromoQueryResponse{Valid: true, Discount: pc.CalculateDiscount(query.OrderValue())}, nil
	case errors.As(err, &rejection):
		return ValidatePromoQueryResponse{Valid: false, Discount: kernel.ZeroMoney(), Reason: rejection.Reason}, nil
	default:
		return ValidatePromoQueryResponse{}, err
	}
}
