package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/promo"
)

// PromoRepository defines the persistence contract for promo codes.
type PromoRepository interface {
	// Add persists a new promo code. An existing code returns *errs.ConflictError.
	Add(ctx context.Context, code *promo.PromoCode) error

	// SetActive updates the active flag only.
	SetActive(ctx context.Context, code *promo.PromoCode) error

	// GetByCode retrieves a promo code by its normalized code.
	GetByCode(ctx context.Context, code string) (*promo.PromoCode, error)

	// UserUsage returns how many times the user redeemed the promo code.
	UserUsage(ctx context.Context, promoID, userID kernel.UUID) (int, error)

	// IncrementUsage atomically increments the global and per-user counters,
	// each conditioned on its limit. When either limit is already reached
	// nothing changes and *errs.ConflictError is returned.
	IncrementUsage(ctx context.Context, promoID, userID kernel.UUID, now time.Time) error
}
