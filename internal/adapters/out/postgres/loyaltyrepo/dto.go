// Package loyaltyrepo persists loyalty accounts and their append-only ledger.
package loyaltyrepo

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountDTO is one user's loyalty balance. The tier column is derived data kept
// for reporting; it is recomputed on restore.
type AccountDTO struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance       int       `gorm:"not null"`
	TotalEarned   int       `gorm:"not null"`
	TotalRedeemed int       `gorm:"not null"`
	Tier          string    `gorm:"type:varchar(16);not null"`
	LastUpdated   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for loyalty accounts.
func (AccountDTO) TableName() string {
	return "loyalty_accounts"
}

// TransactionDTO is one ledger entry. Rows are never updated.
type TransactionDTO struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_loyalty_tx_user_created,priority:1"`
	OrderID      *uuid.UUID        `gorm:"type:uuid"`
	Type         string            `gorm:"type:varchar(16);not null"`
	Amount       int               `gorm:"not null"`
	BalanceAfter int               `gorm:"not null"`
	ExpiresAt    *time.Time        `gorm:"index"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt    time.Time         `gorm:"not null;autoCreateTime:false;index:idx_loyalty_tx_user_created,priority:2"`
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "loyalty_transactions"
}

func accountFromDomain(a *loyalty.Account) AccountDTO {
	return AccountDTO{
		UserID:        a.UserID().Bytes(),
		Balance:       a.Balance(),
		TotalEarned:   a.TotalEarned(),
		TotalRedeemed: a.TotalRedeemed(),
		Tier:          string(a.Tier()),
		LastUpdated:   a.LastUpdated(),
	}
}

func accountToDomain(dto AccountDTO) (*loyalty.Account, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return loyalty.RestoreAccount(userID, dto.Balance, dto.TotalEarned, dto.TotalRedeemed, dto.LastUpdated.UTC())
}

func transactionFromDomain(t *loyalty.Transaction) TransactionDTO {
	var orderID *uuid.UUID
	if id := t.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	var metadata datatypes.JSONMap
	if md := t.Metadata(); len(md) > 0 {
		metadata = make(datatypes.JSONMap, len(md))
		for k, v := range md {
			metadata[k] = v
		}
	}

	return TransactionDTO{
		ID:           t.ID().Bytes(),
		UserID:       t.UserID().Bytes(),
		OrderID:      orderID,
		Type:         string(t.Type()),
		Amount:       t.Amount(),
		BalanceAfter: t.BalanceAfter(),
		ExpiresAt:    t.ExpiresAt(),
		Metadata:     metadata,
		CreatedAt:    t.CreatedAt(),
	}
}

func transactionToDomain(dto TransactionDTO) (*loyalty.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	txType, err := loyalty.ParseTransactionType(dto.Type)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		restored, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &restored
	}

	var expiresAt *time.Time
	if dto.ExpiresAt != nil {
		at := dto.ExpiresAt.UTC()
		expiresAt = &at
	}

	metadata := make(map[string]string, len(dto.Metadata))
	for k, v := range dto.Metadata {
		metadata[k] = fmt.Sprint(v)
	}

	return loyalty.NewTransaction(loyalty.TransactionParams{
		ID:           id,
		UserID:       userID,
		OrderID:      orderID,
		Type:         txType,
		Amount:       dto.Amount,
		BalanceAfter: dto.BalanceAfter,
		ExpiresAt:    expiresAt,
		Metadata:     metadata,
		CreatedAt:    dto.CreatedAt,
	})
}
