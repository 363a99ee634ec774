package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
)

// Catalog is the external restaurant and menu collaborator.
type Catalog interface {
	// GetRestaurant returns the restaurant snapshot or *errs.ObjectNotFoundError.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetMenuItems returns the requested items of the restaurant. Unknown ids are
	// omitted from the result.
	GetMenuItems(ctx context.Context, restaurantID kernel.UUID, ids []kernel.UUID) ([]restaurant.MenuItem, error)
}
