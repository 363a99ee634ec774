package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (see fsm.go for the actor that may take each edge):
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Assigned ──> Picked ──> EnRoute ──> Delivered
//	   │            │             │           ▲          │
//	   ├────────────┴─────────────┤           └──────────┘
//	   v                          v            (decline)
//	Rejected                  Cancelled
//
// Pending is the sole initial status. Delivered, Cancelled and Rejected are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly placed order awaiting the restaurant.
	Pending

	// Confirmed means the restaurant accepted the order.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the food is packed and waiting for a driver.
	Ready

	// Assigned means a driver claimed or was dispatched to the order.
	Assigned

	// Picked means the driver accepted the assignment and collected the food.
	Picked

	// EnRoute means the driver is travelling to the delivery address.
	EnRoute

	// Delivered is terminal: the customer received the order.
	Delivered

	// Cancelled is terminal: the customer cancelled before preparation finished.
	Cancelled

	// Rejected is terminal: the restaurant declined the order.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Assigned:  "assigned",
		Picked:    "picked",
		EnRoute:   "en_route",
		Delivered: "delivered",
		Cancelled: "cancelled",
		Rejected:  "rejected",
	}
}

// ParseStatus converts the persisted or wire form ("en_route") back to a Status.
//
// Returns:
//   - Status: the matching status
//   - error: validation error when the string names no valid status
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the ten defined statuses.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// IsDriverActive reports whether an order in this status occupies its driver.
// A driver may hold at most one order in an active status.
func (s Status) IsDriverActive() bool {
	return s == Assigned || s == Picked || s == EnRoute
}

// DriverActiveStatuses lists the statuses that occupy a driver.
func DriverActiveStatuses() []Status {
	return []Status{Assigned, Picked, EnRoute}
}

// TerminalStatuses lists the statuses that end an order's lifecycle.
func TerminalStatuses() []Status {
	return []Status{Delivered, Cancelled, Rejected}
}
