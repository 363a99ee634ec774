package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// StatusRecord is one immutable entry of an order's status history.
type StatusRecord struct {
	Status    Status
	At        time.Time
	ActorID   kernel.UUID
	ActorRole Role
	Note      string
}

// StatusChanged is raised after every accepted transition and published to the
// notification collaborator once the transaction commits.
type StatusChanged struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	DriverID     *kernel.UUID
	Status       Status
	At           time.Time
}
