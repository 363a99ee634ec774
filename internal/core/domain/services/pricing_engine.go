package services

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed tax applied to subtotal plus delivery fee.
var TaxRate = decimal.RequireFromString("0.09")

// DefaultPlatformFee is the platform fee charged when none is configured.
var DefaultPlatformFee = kernel.MoneyFromFloat(5)

// PricingEngine is a pure domain service computing an order's PricingBreakdown.
//
// Formulas (every intermediate rounded half-up to 2 decimals):
//   - subtotal = Σ (unitPrice + Σ customization deltas) × quantity
//   - taxes = (subtotal + deliveryFee) × 9%
//   - total = subtotal + deliveryFee + taxes + platformFee − discount
//   - commission = subtotal × commissionRate / 100
//
// The engine does not clamp the total; a negative total means the discount
// exceeds the order price and callers reject it.
//
// Example:
//
//	engine := services.NewPricingEngine(kernel.MoneyFromFloat(5))
//	breakdown, err := engine.Price(items, kernel.MoneyFromFloat(40), kernel.ZeroMoney(), decimal.NewFromInt(15))
//	// subtotal 500.00 → taxes 48.60, total 593.60
type PricingEngine struct {
	platformFee kernel.Money
}

// NewPricingEngine creates an engine charging the given platform fee.
func NewPricingEngine(platformFee kernel.Money) PricingEngine {
	return PricingEngine{platformFee: platformFee}
}

// Subtotal sums the line totals. It is exposed separately so callers can size a
// promo discount before pricing the whole order.
func (e PricingEngine) Subtotal(items []order.LineItem) (kernel.Money, error) {
	if len(items) == 0 {
		return kernel.Money{}, errs.NewValueIsRequiredError("line items")
	}

	subtotal := kernel.ZeroMoney()
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return kernel.Money{}, fmt.Errorf("line item %d: %w", i, err)
		}
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal, nil
}

// Price computes the full breakdown.
//
// Parameters:
//   - items: priced line item snapshots (at least one)
//   - deliveryFee: restaurant delivery fee, not negative
//   - discount: promo discount, not negative
//   - commissionRate: percent in [0, 100]
//
// Returns:
//   - order.PricingBreakdown: the breakdown, total possibly negative
//   - error: validation errors for invalid inputs
func (e PricingEngine) Price(
	items []order.LineItem,
	deliveryFee kernel.Money,
	discount kernel.Money,
	commissionRate decimal.Decimal,
) (order.PricingBreakdown, error) {
	var validationErrs []error
	if deliveryFee.IsNegative() {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("delivery fee", deliveryFee, "0.00", "unbounded"))
	}
	if discount.IsNegative() {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("discount", discount, "0.00", "unbounded"))
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(decimal.NewFromInt(100)) {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("commission rate", commissionRate, 0, 100))
	}

	subtotal, err := e.Subtotal(items)
	validationErrs = append(validationErrs, err)
	if err = errors.Join(validationErrs...); err != nil {
		return order.PricingBreakdown{}, err
	}

	taxes := subtotal.Add(deliveryFee).MulRate(TaxRate)
	total := subtotal.Add(deliveryFee).Add(taxes).Add(e.platformFee).Sub(discount)

	return order.PricingBreakdown{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Taxes:       taxes,
		Discount:    discount,
		PlatformFee: e.platformFee,
		Total:       total,
		Commission: order.Commission{
			Rate:   commissionRate,
			Amount: subtotal.Percent(commissionRate),
		},
	}, nil
}
