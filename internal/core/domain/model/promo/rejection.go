package promo

import (
	"foodorder/internal/pkg/errs"
)

// User-facing rejection reasons.
const (
	ReasonInactive      = "promo code is not active"
	ReasonExpired       = "promo code has expired or is not yet valid"
	ReasonMinOrderValue = "minimum order value of %s required"
	ReasonUsageLimit    = "promo code usage limit reached"
	ReasonPerUserLimit  = "you have already used this promo code the maximum number of times"
	ReasonRestaurant    = "promo code is not valid for this restaurant"
	ReasonNewUsersOnly  = "promo code is only valid for new users"
)

// RejectionError reports why a promo code cannot be applied. It is a validation
// error: the checkout fails and no order is created.
type RejectionError struct {
	Reason string
}

func newRejection(reason string) *RejectionError {
	return &RejectionError{Reason: reason}
}

func (e *RejectionError) Error() string {
	return errs.ErrValueIsInvalid.Error() + ": " + e.Reason
}

func (e *RejectionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
