package pgtest

import (
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Actor builds an actor or fails the test.
func Actor(t testing.TB, id kernel.UUID, role order.Role) order.Actor {
	t.Helper()
	a, err := order.NewActor(id, role)
	require.NoError(t, err)
	return a
}

// NewOrder places a pending 300.00 order with one customized line item.
func NewOrder(t testing.TB, customerID, restaurantID kernel.UUID, placedAt time.Time) *order.Order {
	t.Helper()

	restaurantLoc, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(t, err)
	addressLoc, err := kernel.NewLocation(12.9352, 77.6245)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("12 MG Road", "Bengaluru", "560001", addressLoc, "ring twice")
	require.NoError(t, err)

	item, err := order.NewLineItem(kernel.NewUUID(), "Paneer Tikka", kernel.MoneyFromFloat(220), 1,
		[]order.Customization{{Name: "spice", Option: "hot", PriceDelta: kernel.MoneyFromFloat(30)}}, "no onions")
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:                 kernel.NewUUID(),
		CustomerID:         customerID,
		RestaurantID:       restaurantID,
		RestaurantLocation: restaurantLoc,
		Items:              []order.LineItem{item},
		Pricing: order.PricingBreakdown{
			Subtotal:    kernel.MoneyFromFloat(250),
			DeliveryFee: kernel.MoneyFromFloat(20.87),
			Taxes:       kernel.MoneyFromFloat(24.13),
			PlatformFee: kernel.MoneyFromFloat(5),
			Total:       kernel.MoneyFromFloat(300),
			Commission:  order.Commission{Rate: decimal.NewFromInt(10), Amount: kernel.MoneyFromFloat(25)},
		},
		DeliveryAddress:       address,
		ContactPhone:          "+919876543210",
		PaymentMethod:         order.PaymentCard,
		EstimatedDeliveryTime: placedAt.Add(40 * time.Minute),
		PlacedAt:              placedAt,
	})
	require.NoError(t, err)
	return o
}

// MoveTo drives a pending order along the happy path until it reaches target.
// The restaurant actor is derived from the order; the driver claims it at Assigned.
func MoveTo(t testing.TB, o *order.Order, driverID kernel.UUID, target order.Status) {
	t.Helper()

	restaurantActor := Actor(t, o.RestaurantID(), order.RoleRestaurant)
	driverActor := Actor(t, driverID, order.RoleDriver)
	at := o.CreatedAt()
	path := []struct {
		actor order.Actor
		to    order.Status
	}{
		{restaurantActor, order.Confirmed},
		{restaurantActor, order.Preparing},
		{restaurantActor, order.Ready},
		{driverActor, order.Assigned},
		{driverActor, order.Picked},
		{driverActor, order.EnRoute},
		{driverActor, order.Delivered},
	}
	for _, step := range path {
		if o.Status() == target {
			break
		}
		at = at.Add(time.Minute)
		require.NoError(t, o.Transition(step.actor, step.to, "", at))
	}
	require.Equal(t, target, o.Status())
}

// SeedRestaurant stores an open restaurant with the given capacity and returns it.
func SeedRestaurant(t testing.TB, db *gorm.DB, maxConcurrent int) *restaurant.Restaurant {
	t.Helper()

	loc, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(restaurant.Params{
		ID:                  kernel.NewUUID(),
		Name:                "Spice Route",
		Active:              true,
		Open:                true,
		Approved:            true,
		MinOrderValue:       kernel.MoneyFromFloat(100),
		DeliveryFee:         kernel.MoneyFromFloat(30),
		CommissionRate:      decimal.NewFromInt(15),
		Location:            loc,
		MaxConcurrentOrders: maxConcurrent,
	})
	require.NoError(t, err)

	dto := restaurantrepo.RestaurantFromDomain(r)
	require.NoError(t, db.Create(&dto).Error)
	return r
}
