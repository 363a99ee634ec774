// Package kernel provides the shared value objects of the food order domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Location: a WGS84 point with haversine distance in kilometres
//   - Money: a two-decimal amount on github.com/shopspring/decimal with half-up rounding
//
// All value objects are immutable. Location is constructor-guarded; UUID and Money
// have usable zero values that Validate (UUID) or treat as 0.00 (Money).
package kernel
