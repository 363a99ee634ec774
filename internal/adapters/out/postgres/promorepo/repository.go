package promorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerr"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPromoRepository implements PromoRepository using GORM.
type GormPromoRepository struct {
	db *gorm.DB
}

// NewGormPromoRepository creates a new GORM promo repository.
func NewGormPromoRepository(db *gorm.DB) *GormPromoRepository {
	return &GormPromoRepository{db: db}
}

// Add saves a new promo code.
func (r *GormPromoRepository) Add(ctx context.Context, code *promo.PromoCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := fromDomain(code)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("promo code "+code.Code(), "already exists", err)
		}
		return err
	}
	return nil
}

// SetActive writes the active flag of an existing promo code.
func (r *GormPromoRepository) SetActive(ctx context.Context, code *promo.PromoCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PromoCodeDTO{}).
		Where("id = ?", code.ID().Bytes()).
		Update("active", code.IsActive())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("promo code", code.Code())
	}
	return nil
}

// GetByCode retrieves a promo code by its normalized code.
func (r *GormPromoRepository) GetByCode(ctx context.Context, code string) (*promo.PromoCode, error) {
	var dto PromoCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promo code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UserUsage returns the user's redemption count, 0 when the user never used the code.
func (r *GormPromoRepository) UserUsage(ctx context.Context, promoID, userID kernel.UUID) (int, error) {
	var counts []int
	err := r.db.WithContext(ctx).
		Model(&PromoUsageDTO{}).
		Where("promo_id = ? AND user_id = ?", promoID.Bytes(), userID.Bytes()).
		Pluck("count", &counts).Error
	if err != nil || len(counts) == 0 {
		return 0, err
	}
	return counts[0], nil
}

// IncrementUsage bumps the global counter and the user's counter, each guarded by
// its limit in the WHERE clause. Both writes run in a nested transaction so a
// refused per-user increment also undoes the global one.
func (r *GormPromoRepository) IncrementUsage(ctx context.Context, promoID, userID kernel.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var perUserLimits []int
		err := tx.Raw(`
			UPDATE promo_codes
			SET usage_count = usage_count + 1
			WHERE id = ? AND (usage_limit_total = 0 OR usage_count < usage_limit_total)
			RETURNING usage_limit_per_user`, promoID.Bytes()).
			Scan(&perUserLimits).Error
		if err != nil {
			return err
		}
		if len(perUserLimits) == 0 {
			return errs.NewConflictError("promo code "+promoID.String(), "usage limit reached")
		}

		perUser := perUserLimits[0]
		result := tx.Exec(`
			INSERT INTO promo_usages (promo_id, user_id, count, last_used_at)
			VALUES (?, ?, 1, ?)
			ON CONFLICT (promo_id, user_id) DO UPDATE
			SET count = promo_usages.count + 1, last_used_at = EXCLUDED.last_used_at
			WHERE ? = 0 OR promo_usages.count < ?`,
			promoID.Bytes(), userID.Bytes(), now.UTC(), perUser, perUser)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConflictError("promo code "+promoID.String(),
				fmt.Sprintf("per-user limit of %d reached", perUser))
		}
		return nil
	})
}
