package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
)

// LoyaltyRepository defines the persistence contract for loyalty accounts and
// their ledger.
type LoyaltyRepository interface {
	// EnsureAccount creates an empty account for the user unless one exists.
	EnsureAccount(ctx context.Context, userID kernel.UUID, now time.Time) error

	// GetAccountForUpdate loads and row-locks the user's account. A missing account
	// returns *errs.ObjectNotFoundError.
	GetAccountForUpdate(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error)

	// GetAccount loads the account without locking.
	GetAccount(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error)

	// SaveAccount inserts or updates the account.
	SaveAccount(ctx context.Context, account *loyalty.Account) error

	// AppendTransaction appends a ledger entry. A second earned or expired entry
	// for the same order returns *errs.ConflictError.
	AppendTransaction(ctx context.Context, tx *loyalty.Transaction) error

	// HasOrderTransaction reports whether an entry of the type exists for the order.
	HasOrderTransaction(ctx context.Context, orderID kernel.UUID, txType loyalty.TransactionType) (bool, error)

	// RecentTransactions returns the user's latest entries, newest first.
	RecentTransactions(ctx context.Context, userID kernel.UUID, limit int) ([]*loyalty.Transaction, error)

	// ListExpiredUnprocessed returns earned entries past expiry that have no
	// expired entry yet, oldest first.
	ListExpiredUnprocessed(ctx context.Context, now time.Time, limit int) ([]*loyalty.Transaction, error)
}
