package order

import (
	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Commission is the platform's cut of the subtotal. Rate is stored in percent
// next to the amount for audit.
type Commission struct {
	Rate   decimal.Decimal
	Amount kernel.Money
}

// PricingBreakdown is the full price of an order frozen at checkout.
// Total = Subtotal + DeliveryFee + Taxes + PlatformFee - Discount.
type PricingBreakdown struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Taxes       kernel.Money
	Discount    kernel.Money
	PlatformFee kernel.Money
	Total       kernel.Money
	Commission  Commission
}

// AppliedPromo is the promo code snapshot stored on an order.
type AppliedPromo struct {
	Code     string
	Discount kernel.Money
}
