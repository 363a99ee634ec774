// Package order provides the Order aggregate of the food ordering domain and the
// state machine that drives it.
//
// The package includes:
//   - Order: the aggregate root holding line item and pricing snapshots, payment
//     state, delivery address and the append-only status history
//   - Status: the ten lifecycle statuses
//   - the transition table (fsm.go): for each status the (role, next status, guard)
//     edges; anything not in the table is rejected without mutation
//   - Actor and Role: the authenticated party acting on an order
//   - StatusChanged: the domain event recorded by every accepted transition
//
// Key business rules:
//   - the current status is always the status of the last history entry
//   - a driver claims a Ready order only while no driver is assigned
//   - only the assigned driver accepts, declines, starts and completes a delivery
//   - delivery completes the payment and records the great-circle distance
//   - cancelling a paid order records a full refund
package order
