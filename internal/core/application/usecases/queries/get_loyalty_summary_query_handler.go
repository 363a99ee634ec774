package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoyaltySummaryQueryHandler reads the loyalty tables directly.
type GetLoyaltySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetLoyaltySummaryQueryHandler creates a handler for loyalty summaries.
func NewGetLoyaltySummaryQueryHandler(db *gorm.DB) GetLoyaltySummaryQueryHandler {
	return GetLoyaltySummaryQueryHandler{db: db}
}

type accountRow struct {
	Balance       int
	TotalEarned   int
	TotalRedeemed int
}

type ledgerRow struct {
	ID           uuid.UUID
	OrderID      uuid.NullUUID
	Type         string
	Amount       int
	BalanceAfter int
	ExpiresAt    *time.Time
	CreatedAt    time.Time
}

// Handle returns the summary. The tier is derived from the lifetime earned
// coins, not read from the stored column.
func (h GetLoyaltySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetLoyaltySummaryQuery,
) (GetLoyaltySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoyaltySummaryQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	userID := query.UserID().Bytes()

	var account accountRow
	err := db.Raw(`
		SELECT balance, total_earned, total_redeemed
		FROM loyalty_accounts
		WHERE user_id = ?
	`, userID).Scan(&account).Error
	if err != nil {
		return GetLoyaltySummaryQueryResponse{}, err
	}

	var rows []ledgerRow
	err = db.Raw(`
		SELECT id, order_id, type, amount, balance_after, expires_at, created_at
		FROM loyalty_transactions
		WHERE user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`, userID, RecentTransactionsLimit).Scan(&rows).Error
	if err != nil {
		return GetLoyaltySummaryQueryResponse{}, err
	}

	recent, err := ledgerToViews(rows)
	if err != nil {
		return GetLoyaltySummaryQueryResponse{}, err
	}

	nextTier, missing := loyalty.NextTier(account.TotalEarned)
	return GetLoyaltySummaryQueryResponse{
		UserID:             query.UserID(),
		Balance:            account.Balance,
		Tier:               loyalty.TierFor(account.TotalEarned),
		TotalEarned:        account.TotalEarned,
		TotalRedeemed:      account.TotalRedeemed,
		NextTier:           nextTier,
		CoinsToNextTier:    missing,
		RecentTransactions: recent,
	}, nil
}

func ledgerToViews(rows []ledgerRow) ([]LoyaltyTransactionView, error) {
	views := make([]LoyaltyTransactionView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		orderID, err := nullableUUID(row.OrderID)
		if err != nil {
			return nil, err
		}
		txType, err := loyalty.ParseTransactionType(row.Type)
		if err != nil {
			return nil, err
		}

		view := LoyaltyTransactionView{
			ID:           id,
			OrderID:      orderID,
			Type:         txType,
			Amount:       row.Amount,
			BalanceAfter: row.BalanceAfter,
			CreatedAt:    row.CreatedAt.UTC(),
		}
		if row.ExpiresAt != nil {
			expiresAt := row.ExpiresAt.UTC()
			view.ExpiresAt = &expiresAt
		}
		views = append(views, view)
	}
	return views, nil
}
