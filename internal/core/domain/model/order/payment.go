package order

import (
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentUPI    PaymentMethod = "upi"
	PaymentWallet PaymentMethod = "wallet"
)

// ParsePaymentMethod validates a payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentWallet:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", s))
	}
}

// PaymentStatus is owned by the external payment collaborator; the order only
// sets it at delivery (completed) and at cancellation (refunded).
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ParsePaymentStatus validates a payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid payment status", s))
	}
}

// PaymentInfo is the payment state of an order.
type PaymentInfo struct {
	Method         PaymentMethod
	Status         PaymentStatus
	TransactionRef string
	Gateway        string
	PaidAt         *time.Time
}
