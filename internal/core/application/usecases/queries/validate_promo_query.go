package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrValidatePromoQueryIsNotConstructed = errors.New(
		"ValidatePromoQuery must be created via NewValidatePromoQuery constructor",
	)
)

// ValidatePromoQuery checks whether a code would apply to a prospective order
// without redeeming it.
type ValidatePromoQuery struct {
	code         string
	orderValue   kernel.Money
	restaurantID kernel.UUID
	userID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewValidatePromoQuery creates the query. A malformed code or a negative order
// value is a validation error.
func NewValidatePromoQuery(
	code string,
	orderValue kernel.Money,
	restaurantID kernel.UUID,
	userID kernel.UUID,
) (ValidatePromoQuery, error) {
	normalized, codeErr := promo.NormalizeCode(code)
	validationErrs := []error{codeErr, restaurantID.Validate(), userID.Validate()}
	if orderValue.IsNegative() {
		validationErrs = append(validationErrs,
			errs.NewValueIsOutOfRangeError("order value", orderValue, "0.00", "unbounded"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return ValidatePromoQuery{}, err
	}

	return ValidatePromoQuery{
		code:         normalized,
		orderValue:   orderValue,
		restaurantID: restaurantID,
		userID:       userID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidatePromoQuery) Validate() error {
	return q.guard.Validate(ErrValidatePromoQueryIsNotConstructed)
}

// Code returns the normalized code.
func (q ValidatePromoQuery) Code() string {
	return q.code
}

// OrderValue returns the subtotal the code would apply to.
func (q ValidatePromoQuery) OrderValue() kernel.Money {
	return q.orderValue
}

// RestaurantID returns the restaurant of the prospective order.
func (q ValidatePromoQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// UserID returns the prospective redeemer.
func (q ValidatePromoQuery) UserID() kernel.UUID {
	return q.userID
}

// ValidatePromoQueryResponse tells whether the code applies. Reason is set only
// when Valid is false.
type ValidatePromoQueryResponse struct {
	Valid    bool
	Discount kernel.Money
	Reason   string
}
