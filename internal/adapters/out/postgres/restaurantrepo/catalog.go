package restaurantrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalog implements ports.Catalog over the restaurants and menu_items tables.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a catalog reader.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetRestaurant returns the restaurant snapshot.
func (c *GormCatalog) GetRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// GetMenuItems returns the requested items of the restaurant; unknown ids and
// items of other restaurants are left out.
func (c *GormCatalog) GetMenuItems(
	ctx context.Context,
	restaurantID kernel.UUID,
	ids []kernel.UUID,
) ([]restaurant.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	err := c.db.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ?", restaurantID.Bytes(), raw).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]restaurant.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, mapErr := menuItemToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		items = append(items, item)
	}
	return items, nil
}
