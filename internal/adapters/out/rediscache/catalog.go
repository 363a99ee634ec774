// Package rediscache keeps restaurant snapshots in redis in front of the catalog.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const keyPrefix = "foodorder:restaurant:"

type cachedRestaurant struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Active              bool            `json:"active"`
	Open                bool            `json:"open"`
	Approved            bool            `json:"approved"`
	MinOrderValue       decimal.Decimal `json:"minOrderValue"`
	DeliveryFee         decimal.Decimal `json:"deliveryFee"`
	CommissionRate      decimal.Decimal `json:"commissionRate"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	MaxConcurrentOrders int             `json:"maxConcurrentOrders"`
	CurrentOrdersCount  int             `json:"currentOrdersCount"`
}

// Catalog is a read-through cache for GetRestaurant. Menu items always come
// from the wrapped catalog since prices must be current at checkout.
//
// A cached snapshot may be up to ttl old. Capacity is enforced by storage, so
// only the open/active flags and fees can lag behind.
type Catalog struct {
	next   ports.Catalog
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCatalog wraps next. Redis failures are logged and served from next.
func NewCatalog(next ports.Catalog, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Catalog {
	return &Catalog{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "RestaurantCache"),
	}
}

// GetRestaurant returns the cached snapshot or loads and caches it.
func (c *Catalog) GetRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	key := keyPrefix + id.String()

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		r, decodeErr := decode(raw)
		if decodeErr == nil {
			return r, nil
		}
		c.logger.WarnContext(ctx, "dropping undecodable cache entry", "key", key, "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	r, err := c.next.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, encodeErr := encode(r); encodeErr == nil {
		if setErr := c.client.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", setErr)
		}
	}
	return r, nil
}

// GetMenuItems delegates to the wrapped catalog.
func (c *Catalog) GetMenuItems(ctx context.Context, restaurantID kernel.UUID, ids []kernel.UUID) ([]restaurant.MenuItem, error) {
	return c.next.GetMenuItems(ctx, restaurantID, ids)
}

func encode(r *restaurant.Restaurant) ([]byte, error) {
	return json.Marshal(cachedRestaurant{
		ID:                  r.ID().String(),
		Name:                r.Name(),
		Active:              r.IsActive(),
		Open:                r.IsOpen(),
		Approved:            r.IsApproved(),
		MinOrderValue:       r.MinOrderValue().Decimal(),
		DeliveryFee:         r.DeliveryFee().Decimal(),
		CommissionRate:      r.CommissionRate(),
		Latitude:            r.Location().Latitude(),
		Longitude:           r.Location().Longitude(),
		MaxConcurrentOrders: r.MaxConcurrentOrders(),
		CurrentOrdersCount:  r.CurrentOrdersCount(),
	})
}

func decode(raw []byte) (*restaurant.Restaurant, error) {
	var cached cachedRestaurant
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}
	id, err := kernel.UUIDFromString(cached.ID)
	if err != nil {
		return nil, err
	}
	loc, err := kernel.NewLocation(cached.Latitude, cached.Longitude)
	if err != nil {
		return nil, err
	}
	return restaurant.NewRestaurant(restaurant.Params{
		ID:                  id,
		Name:                cached.Name,
		Active:              cached.Active,
		Open:                cached.Open,
		Approved:            cached.Approved,
		MinOrderValue:       kernel.NewMoney(cached.MinOrderValue),
		DeliveryFee:         kernel.NewMoney(cached.DeliveryFee),
		CommissionRate:      cached.CommissionRate,
		Location:            loc,
		MaxConcurrentOrders: cached.MaxConcurrentOrders,
		CurrentOrdersCount:  cached.CurrentOrdersCount,
	})
}
