package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/pkg/guard"
)

// RecentTransactionsLimit is how many ledger entries a summary carries.
const RecentTransactionsLimit = 10

var (
	ErrGetLoyaltySummaryQueryIsNotConstructed = errors.New(
		"GetLoyaltySummaryQuery must be created via NewGetLoyaltySummaryQuery constructor",
	)
)

// GetLoyaltySummaryQuery reads a user's balance, tier and latest ledger entries.
type GetLoyaltySummaryQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoyaltySummaryQuery creates the query.
func NewGetLoyaltySummaryQuery(userID kernel.UUID) (GetLoyaltySummaryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetLoyaltySummaryQuery{}, err
	}
	return GetLoyaltySummaryQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoyaltySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltySummaryQueryIsNotConstructed)
}

// UserID returns the account owner.
func (q GetLoyaltySummaryQuery) UserID() kernel.UUID {
	return q.userID
}

// GetLoyaltySummaryQueryResponse is the loyalty dashboard of a user. A user
// without an account gets an empty bronze summary. NextTier is empty at platinum.
type GetLoyaltySummaryQueryResponse struct {
	UserID             kernel.UUID
	Balance            int
	Tier               loyalty.Tier
	TotalEarned        int
	TotalRedeemed      int
	NextTier           loyalty.Tier
	CoinsToNextTier    int
	RecentTransactions []LoyaltyTransactionView
}

// LoyaltyTransactionView is one ledger entry.
type LoyaltyTransactionView struct {
	ID           kernel.UUID
	OrderID      *kernel.UUID
	Type         loyalty.TransactionType
	Amount       int
	BalanceAfter int
	ExpiresAt    *time.Time
	CreatedAt    time.Time
}
