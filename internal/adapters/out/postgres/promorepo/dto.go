// Package promorepo persists promo codes and their per-user usage counters.
package promorepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/promo"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PromoCodeDTO represents the database structure for promo codes. The restaurant
// allow-list is a text[] column.
type PromoCodeDTO struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Code              string              `gorm:"type:varchar(32);not null;uniqueIndex"`
	Description       string
	DiscountType      string              `gorm:"type:varchar(16);not null"`
	Value             decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	MaxDiscount       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	MinOrderValue     decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	ValidFrom         time.Time           `gorm:"not null"`
	ValidUntil        time.Time           `gorm:"not null"`
	UsageLimitTotal   int                 `gorm:"not null"`
	UsageLimitPerUser int                 `gorm:"not null"`
	UsageCount        int                 `gorm:"not null"`
	ApplicableFor     string              `gorm:"type:varchar(32);not null"`
	RestaurantIDs     pq.StringArray      `gorm:"type:text[]"`
	Active            bool                `gorm:"not null"`
	CreatedBy         uuid.UUID           `gorm:"type:uuid;not null"`
	CreatedAt         time.Time           `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the database table name for promo codes.
func (PromoCodeDTO) TableName() string {
	return "promo_codes"
}

// PromoUsageDTO counts one user's redemptions of one promo code.
type PromoUsageDTO struct {
	PromoID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Count      int       `gorm:"not null"`
	LastUsedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for usage counters.
func (PromoUsageDTO) TableName() string {
	return "promo_usages"
}

func fromDomain(p *promo.PromoCode) PromoCodeDTO {
	restaurants := make(pq.StringArray, 0, len(p.Restaurants()))
	for _, id := range p.Restaurants() {
		restaurants = append(restaurants, id.String())
	}

	dto := PromoCodeDTO{
		ID:                p.ID().Bytes(),
		Code:              p.Code(),
		Description:       p.Description(),
		DiscountType:      string(p.Type()),
		Value:             p.Value(),
		MinOrderValue:     p.MinOrderValue().Decimal(),
		ValidFrom:         p.ValidFrom(),
		ValidUntil:        p.ValidUntil(),
		UsageLimitTotal:   p.UsageLimit().Total,
		UsageLimitPerUser: p.UsageLimit().PerUser,
		UsageCount:        p.UsageCount(),
		ApplicableFor:     string(p.ApplicableFor()),
		RestaurantIDs:     restaurants,
		Active:            p.IsActive(),
		CreatedBy:         p.CreatedBy().Bytes(),
		CreatedAt:         p.CreatedAt(),
	}
	if maxDiscount := p.MaxDiscount(); maxDiscount != nil {
		dto.MaxDiscount = decimal.NewNullDecimal(maxDiscount.Decimal())
	}

	return dto
}

func toDomain(dto PromoCodeDTO) (*promo.PromoCode, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	restaurants := make([]kernel.UUID, 0, len(dto.RestaurantIDs))
	for _, raw := range dto.RestaurantIDs {
		restaurantID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		restaurants = append(restaurants, restaurantID)
	}

	var maxDiscount *kernel.Money
	if dto.MaxDiscount.Valid {
		m := kernel.NewMoney(dto.MaxDiscount.Decimal)
		maxDiscount = &m
	}

	return promo.RestorePromoCode(promo.Params{
		ID:            id,
		Code:          dto.Code,
		Description:   dto.Description,
		Type:          promo.DiscountType(dto.DiscountType),
		Value:         dto.Value,
		MaxDiscount:   maxDiscount,
		MinOrderValue: kernel.NewMoney(dto.MinOrderValue),
		ValidFrom:     dto.ValidFrom,
		ValidUntil:    dto.ValidUntil,
		UsageLimit: promo.UsageLimit{
			Total:   dto.UsageLimitTotal,
			PerUser: dto.UsageLimitPerUser,
		},
		ApplicableFor: promo.Applicability(dto.ApplicableFor),
		Restaurants:   restaurants,
		CreatedBy:     createdBy,
		CreatedAt:     dto.CreatedAt,
	}, dto.UsageCount, dto.Active)
}
