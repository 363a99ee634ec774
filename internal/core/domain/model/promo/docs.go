// Package promo provides the PromoCode aggregate: a reusable discount definition
// with a validity window, usage limits and an applicability restriction.
//
// Validation is pure. Usage counters are incremented atomically by the storage
// layer inside the order creation transaction, so they are read-only here.
package promo
