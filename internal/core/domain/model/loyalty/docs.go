// Package loyalty provides the loyalty Account of a user and its append-only
// Transaction ledger. Coins are whole numbers; the tier is derived from lifetime
// earned coins with thresholds 0 / 500 / 2000 / 5000.
package loyalty
