package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// guardFunc checks an actor-specific precondition of an edge against the order.
// It returns nil when the edge may be taken.
type guardFunc func(o *Order, actor Actor) error

// edge is one permitted (role, next status) pair out of a status.
type edge struct {
	role  Role
	to    Status
	guard guardFunc
}

// transitions is the complete state machine. A transition not listed here is
// rejected without touching the order. Terminal statuses have no edges.
var transitions = map[Status][]edge{
	Pending: {
		{role: RoleRestaurant, to: Confirmed, guard: restaurantOwnsOrder},
		{role: RoleRestaurant, to: Preparing, guard: restaurantOwnsOrder},
		{role: RoleRestaurant, to: Ready, guard: restaurantOwnsOrder},
		{role: RoleRestaurant, to: Rejected, guard: restaurantOwnsOrder},
		{role: RoleCustomer, to: Cancelled, guard: customerOwnsOrder},
	},
	Confirmed: {
		{role: RoleRestaurant, to: Preparing, guard: restaurantOwnsOrder},
		{role: RoleRestaurant, to: Ready, guard: restaurantOwnsOrder},
		{role: RoleRestaurant, to: Rejected, guard: restaurantOwnsOrder},
		{role: RoleCustomer, to: Cancelled, guard: customerOwnsOrder},
	},
	Preparing: {
		{role: RoleRestaurant, to: Confirmed, guard: restaurantOwnsOrder},
		{role: RoleRestaurant, to: Ready, guard: restaurantOwnsOrder},
		{role: RoleRestaurant, to: Rejected, guard: restaurantOwnsOrder},
		{role: RoleCustomer, to: Cancelled, guard: customerOwnsOrder},
	},
	Ready: {
		{role: RoleDriver, to: Assigned, guard: noDriverAssigned},
		{role: RoleAdmin, to: Assigned, guard: noDriverAssigned},
	},
	Assigned: {
		{role: RoleDriver, to: Picked, guard: assignedToSelf},
		{role: RoleDriver, to: Ready, guard: assignedToSelf},
	},
	Picked: {
		{role: RoleDriver, to: EnRoute, guard: assignedToSelf},
	},
	EnRoute: {
		{role: RoleDriver, to: Delivered, guard: assignedToSelf},
	},
}

// resolveEdge finds the edge an actor may take from one status to another.
//
// Returns:
//   - conflict error when no role may move from "from" to "to" (this covers
//     terminal statuses and self-loops)
//   - forbidden error when the edge exists only for other roles
//   - the guard's error when the actor fails an ownership or assignment check
func resolveEdge(o *Order, from, to Status, actor Actor) (edge, error) {
	reachable := false
	for _, e := range transitions[from] {
		if e.to != to {
			continue
		}
		reachable = true

		if e.role != actor.Role() {
			continue
		}

		if e.guard != nil {
			if err := e.guard(o, actor); err != nil {
				return edge{}, err
			}
		}
		return e, nil
	}

	if !reachable {
		return edge{}, errs.NewConflictError(
			"order",
			fmt.Sprintf("cannot transition from %s to %s", from, to),
		)
	}

	return edge{}, errs.NewForbiddenError(actor.Role().String(), fmt.Sprintf("move order from %s to %s", from, to))
}

// AllowedTransitions lists the statuses a role may move an order to from a status,
// ignoring ownership guards. Useful for clients rendering available actions.
func AllowedTransitions(from Status, role Role) []Status {
	next := make([]Status, 0)
	for _, e := range transitions[from] {
		if e.role == role {
			next = append(next, e.to)
		}
	}
	return next
}

func restaurantOwnsOrder(o *Order, actor Actor) error {
	if !actor.Is(RoleRestaurant, o.restaurantID) {
		return errs.NewForbiddenError("restaurant "+actor.ID().String(), "manage order of another restaurant")
	}
	return nil
}

func customerOwnsOrder(o *Order, actor Actor) error {
	if !actor.Is(RoleCustomer, o.customerID) {
		return errs.NewForbiddenError("customer "+actor.ID().String(), "cancel order of another customer")
	}
	return nil
}

func noDriverAssigned(o *Order, _ Actor) error {
	if o.driverID != nil {
		return errs.NewConflictError("order", "already claimed")
	}
	return nil
}

func assignedToSelf(o *Order, actor Actor) error {
	if o.driverID == nil || !actor.Is(RoleDriver, *o.driverID) {
		return errs.NewForbiddenError("driver "+actor.ID().String(), "act on an order not assigned to them")
	}
	return nil
}
