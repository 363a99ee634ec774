package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order with its items and status history.
//
// The order is visible to its customer, its restaurant, its assigned driver and
// admins. A ready order without a driver is also visible to every driver so
// they can decide whether to claim it.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates the query.
func NewGetOrderQuery(orderID kernel.UUID, actor order.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the reader.
func (q GetOrderQuery) Actor() order.Actor {
	return q.actor
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	DriverID              *kernel.UUID
	Status                order.Status
	Items                 []OrderItemView
	Pricing               PricingView
	PromoCode             string
	DeliveryAddress       AddressView
	ContactPhone          string
	PaymentMethod         string
	PaymentStatus         string
	DistanceKm            *float64
	CancellationReason    string
	RefundAmount          *kernel.Money
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
	History               []StatusEntryView

	// AllowedTransitions are the statuses the reading actor's role may move
	// the order to next. Ownership is checked when the move is made.
	AllowedTransitions []order.Status
}

// OrderItemView is a line item as priced at checkout.
type OrderItemView struct {
	MenuItemID     kernel.UUID
	Name           string
	UnitPrice      kernel.Money
	Quantity       int
	Customizations []CustomizationView
	Instructions   string
}

// CustomizationView is a selected option of a line item.
type CustomizationView struct {
	Name       string
	Option     string
	PriceDelta kernel.Money
}

// PricingView is the pricing snapshot of an order.
type PricingView struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Taxes       kernel.Money
	Discount    kernel.Money
	PlatformFee kernel.Money
	Total       kernel.Money
}

// AddressView is the delivery address.
type AddressView struct {
	Street       string
	City         string
	PostalCode   string
	Latitude     float64
	Longitude    float64
	Instructions string
}

// StatusEntryView is one entry of the status history.
type StatusEntryView struct {
	Status    order.Status
	At        time.Time
	ActorID   kernel.UUID
	ActorRole order.Role
	Note      string
}
