package loyalty

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	Earned   TransactionType = "earned"
	Redeemed TransactionType = "redeemed"
	Expired  TransactionType = "expired"
	Bonus    TransactionType = "bonus"
	Referral TransactionType = "referral"
)

// ParseTransactionType validates a persisted transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch tt := TransactionType(s); tt {
	case Earned, Redeemed, Expired, Bonus, Referral:
		return tt, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("transaction type", fmt.Errorf("%q is not valid", s))
	}
}

// Transaction is an immutable ledger entry. BalanceAfter equals the account
// balance immediately after the entry was appended.
type Transaction struct {
	id           kernel.UUID
	userID       kernel.UUID
	orderID      *kernel.UUID
	txType       TransactionType
	amount       int
	balanceAfter int
	expiresAt    *time.Time
	metadata     map[string]string
	createdAt    time.Time
}

// TransactionParams describes a ledger entry.
type TransactionParams struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	OrderID      *kernel.UUID
	Type         TransactionType
	Amount       int
	BalanceAfter int
	ExpiresAt    *time.Time
	Metadata     map[string]string
	CreatedAt    time.Time
}

// NewTransaction validates and creates a ledger entry. Earned, bonus and referral
// entries are credits (positive); redeemed and expired entries are debits
// (zero or negative).
func NewTransaction(p TransactionParams) (*Transaction, error) {
	_, typeErr := ParseTransactionType(string(p.Type))
	validationErrs := []error{p.ID.Validate(), p.UserID.Validate(), typeErr}

	if p.OrderID != nil {
		validationErrs = append(validationErrs, p.OrderID.Validate())
	}
	switch p.Type {
	case Earned, Bonus, Referral:
		if p.Amount <= 0 {
			validationErrs = append(validationErrs,
				errs.NewValueIsOutOfRangeError("amount", p.Amount, 1, "unbounded"))
		}
	case Redeemed, Expired:
		if p.Amount > 0 {
			validationErrs = append(validationErrs,
				errs.NewValueIsOutOfRangeError("amount", p.Amount, "unbounded", 0))
		}
	}
	if p.BalanceAfter < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("balance after", p.BalanceAfter, 0, "unbounded"))
	}
	if p.CreatedAt.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("created at"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	metadata := make(map[string]string, len(p.Metadata))
	for k, v := range p.Metadata {
		metadata[k] = v
	}

	var orderID *kernel.UUID
	if p.OrderID != nil {
		id := *p.OrderID
		orderID = &id
	}

	return &Transaction{
		id:           p.ID,
		userID:       p.UserID,
		orderID:      orderID,
		txType:       p.Type,
		amount:       p.Amount,
		balanceAfter: p.BalanceAfter,
		expiresAt:    p.ExpiresAt,
		metadata:     metadata,
		createdAt:    p.CreatedAt.UTC(),
	}, nil
}

func (t *Transaction) ID() kernel.UUID {
	return t.id
}

func (t *Transaction) UserID() kernel.UUID {
	return t.userID
}

func (t *Transaction) OrderID() *kernel.UUID {
	return t.orderID
}

func (t *Transaction) Type() TransactionType {
	return t.txType
}

// Amount is signed: credits are positive, debits negative.
func (t *Transaction) Amount() int {
	return t.amount
}

func (t *Transaction) BalanceAfter() int {
	return t.balanceAfter
}

func (t *Transaction) ExpiresAt() *time.Time {
	return t.expiresAt
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// Metadata returns a copy of the free-form attributes.
func (t *Transaction) Metadata() map[string]string {
	m := make(map[string]string, len(t.metadata))
	for k, v := range t.metadata {
		m[k] = v
	}
	return m
}
