package loyaltyrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerr"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderEntryIndex is the partial unique index allowing one earned and one expired
// entry per order.
const OrderEntryIndex = "ux_loyalty_order_entry"

// GormLoyaltyRepository implements LoyaltyRepository using GORM.
type GormLoyaltyRepository struct {
	db *gorm.DB
}

// NewGormLoyaltyRepository creates a new GORM loyalty repository.
func NewGormLoyaltyRepository(db *gorm.DB) *GormLoyaltyRepository {
	return &GormLoyaltyRepository{db: db}
}

// EnsureAccount inserts an empty bronze account unless the user already has one.
func (r *GormLoyaltyRepository) EnsureAccount(ctx context.Context, userID kernel.UUID, now time.Time) error {
	account, err := loyalty.NewAccount(userID, now)
	if err != nil {
		return err
	}

	dto := accountFromDomain(account)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// GetAccountForUpdate loads the account with SELECT ... FOR UPDATE.
func (r *GormLoyaltyRepository) GetAccountForUpdate(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error) {
	return r.getAccount(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

// GetAccount loads the account without locking.
func (r *GormLoyaltyRepository) GetAccount(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error) {
	return r.getAccount(r.db.WithContext(ctx), userID)
}

func (r *GormLoyaltyRepository) getAccount(db *gorm.DB, userID kernel.UUID) (*loyalty.Account, error) {
	var dto AccountDTO
	if err := db.First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loyalty account", userID.String())
		}
		return nil, err
	}
	return accountToDomain(dto)
}

// SaveAccount upserts the account row.
func (r *GormLoyaltyRepository) SaveAccount(ctx context.Context, account *loyalty.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(account)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// AppendTransaction inserts a ledger entry.
func (r *GormLoyaltyRepository) AppendTransaction(ctx context.Context, tx *loyalty.Transaction) error {
	dto := transactionFromDomain(tx)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			subject := "loyalty entry"
			if id := tx.OrderID(); id != nil {
				subject = "order " + id.String()
			}
			return errs.NewConflictErrorWithCause(subject, "already has an "+string(tx.Type())+" entry", err)
		}
		return err
	}
	return nil
}

// HasOrderTransaction reports whether an entry of txType exists for the order.
func (r *GormLoyaltyRepository) HasOrderTransaction(
	ctx context.Context,
	orderID kernel.UUID,
	txType loyalty.TransactionType,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("order_id = ? AND type = ?", orderID.Bytes(), string(txType)).
		Count(&count).Error
	return count > 0, err
}

// RecentTransactions returns the user's latest entries, newest first.
func (r *GormLoyaltyRepository) RecentTransactions(
	ctx context.Context,
	userID kernel.UUID,
	limit int,
) ([]*loyalty.Transaction, error) {
	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toTransactions(dtos)
}

// ListExpiredUnprocessed returns earned entries whose expiry passed and whose
// order has no expired entry yet, oldest expiry first.
func (r *GormLoyaltyRepository) ListExpiredUnprocessed(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]*loyalty.Transaction, error) {
	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Where("type = ? AND order_id IS NOT NULL AND expires_at <= ?", string(loyalty.Earned), now.UTC()).
		Where(`NOT EXISTS (
			SELECT 1 FROM loyalty_transactions e
			WHERE e.order_id = loyalty_transactions.order_id AND e.type = ?)`, string(loyalty.Expired)).
		Order("expires_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toTransactions(dtos)
}

func toTransactions(dtos []TransactionDTO) ([]*loyalty.Transaction, error) {
	txs := make([]*loyalty.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		t, err := transactionToDomain(dto)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}
