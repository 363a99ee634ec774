// Package services provides the pure domain services of the food order domain.
//
// The package includes:
//   - PricingEngine: computes an order's PricingBreakdown from line items, delivery
//     fee, discount and commission rate with half-up 2-decimal rounding
//   - LoyaltyAwarder: computes coin awards for delivered orders, redemptions and
//     expiries against a loyalty account
//
// Neither service touches storage; the application layer loads aggregates, calls the
// service and persists the results in one unit of work.
package services
