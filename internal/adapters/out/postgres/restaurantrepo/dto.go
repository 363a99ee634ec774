// Package restaurantrepo reads the restaurant catalog tables and maintains the
// per-restaurant concurrent order counter.
package restaurantrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RestaurantDTO is a restaurant as stored by the catalog. Only
// CurrentOrdersCount is written by this service.
type RestaurantDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                string          `gorm:"not null"`
	Active              bool            `gorm:"not null"`
	Open                bool            `gorm:"not null"`
	Approved            bool            `gorm:"not null"`
	MinOrderValue       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CommissionRate      decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Latitude            float64         `gorm:"not null"`
	Longitude           float64         `gorm:"not null"`
	MaxConcurrentOrders int             `gorm:"not null"`
	CurrentOrdersCount  int             `gorm:"not null"`
	UpdatedAt           time.Time
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is a dish with its customization options as JSON.
type MenuItemDTO struct {
	ID           uuid.UUID                       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID                       `gorm:"type:uuid;not null;index"`
	Name         string                          `gorm:"not null"`
	Price        decimal.Decimal                 `gorm:"type:numeric(12,2);not null"`
	Available    bool                            `gorm:"not null"`
	Options      datatypes.JSONType[[]OptionDTO] `gorm:"not null"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// OptionDTO is the JSON form of a customization option.
type OptionDTO struct {
	Name       string          `json:"name"`
	Option     string          `json:"option"`
	PriceDelta decimal.Decimal `json:"priceDelta"`
}

// RestaurantFromDomain maps a restaurant snapshot to its row. It is used to seed
// the catalog tables.
func RestaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:                  r.ID().Bytes(),
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
	}
}

// MenuItemFromDomain maps a menu item to its row.
func MenuItemFromDomain(m restaurant.MenuItem) MenuItemDTO {
	options := make([]OptionDTO, 0, len(m.Options))
	for _, o := range m.Options {
		options = append(options, OptionDTO{Name: o.Name, Option: o.Option, PriceDelta: o.PriceDelta.Decimal()})
	}

	return MenuItemDTO{
		ID:           m.ID.Bytes(),
		RestaurantID: m.RestaurantID.Bytes(),
		Name:         m.Name,
		Price:        m.Price.Decimal(),
		Available:    m.Available,
		Options:      datatypes.NewJSONType(options),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(restaurant.Params{
		ID:                  id,
		Name:                dto.Name,
		Active:              dto.Active,
		Open:                dto.Open,
		Approved:            dto.Approved,
		MinOrderValue:       kernel.NewMoney(dto.MinOrderValue),
		DeliveryFee:         kernel.NewMoney(dto.DeliveryFee),
		CommissionRate:      dto.CommissionRate,
		Location:            location,
		MaxConcurrentOrders: dto.MaxConcurrentOrders,
		CurrentOrdersCount:  dto.CurrentOrdersCount,
	})
}

func menuItemToDomain(dto MenuItemDTO) (restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return restaurant.MenuItem{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	stored := dto.Options.Data()
	options := make([]restaurant.CustomizationOption, 0, len(stored))
	for _, o := range stored {
		options = append(options, restaurant.CustomizationOption{
			Name:       o.Name,
			Option:     o.Option,
			PriceDelta: kernel.NewMoney(o.PriceDelta),
		})
	}

	return restaurant.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Price:        kernel.NewMoney(dto.Price),
		Available:    dto.Available,
		Options:      options,
	}, nil
}
