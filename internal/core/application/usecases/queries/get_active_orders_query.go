package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery lists the non-terminal orders an actor works with.
//
//   - customer: their own open orders
//   - restaurant: open orders placed with them
//   - driver: orders assigned to them plus ready orders nobody has claimed
//   - admin: every open order
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(actor)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	actor order.Actor

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates the query for an authenticated actor.
func NewGetActiveOrdersQuery(actor order.Actor) (GetActiveOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	return GetActiveOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Actor returns the actor the list is scoped to.
func (q GetActiveOrdersQuery) Actor() order.Actor {
	return q.actor
}

// GetActiveOrdersQueryResponse is one open order in a work list.
type GetActiveOrdersQueryResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	DriverID              *kernel.UUID
	Status                order.Status
	Total                 kernel.Money
	DeliveryCity          string
	EstimatedDeliveryTime time.Time
	CreatedAt             time.Time
}
