package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand carries a payment outcome reported by the payment
// collaborator.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	status         order.PaymentStatus
	transactionRef string
	gateway        string

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a payment update. Which statuses may be
// reported is decided by the order.
func NewUpdatePaymentStatusCommand(
	orderID kernel.UUID,
	status order.PaymentStatus,
	transactionRef string,
	gateway string,
) (UpdatePaymentStatusCommand, error) {
	_, statusErr := order.ParsePaymentStatus(string(status))
	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return UpdatePaymentStatusCommand{
		orderID:        orderID,
		status:         status,
		transactionRef: transactionRef,
		gateway:        gateway,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdatePaymentStatusCommand) Status() order.PaymentStatus { return c.status }
func (c UpdatePaymentStatusCommand) TransactionRef() string { return c.transactionRef }
func (c UpdatePaymentStatusCommand) Gateway() string { return c.gateway }
