package commands

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePromoCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"CreatePromoCommand must be created via NewCreatePromoCommand constructor",
)

// PromoDefinition is the admin-supplied definition of a promo code.
type PromoDefinition struct {
	Code          string
	Description   string
	Type          promo.DiscountType
	Value         decimal.Decimal
	MaxDiscount   *kernel.Money
	MinOrderValue kernel.Money
	ValidFrom     time.Time
	ValidUntil    time.Time
	UsageLimit    promo.UsageLimit
	ApplicableFor promo.Applicability
	Restaurants   []kernel.UUID
}

// CreatePromoCommand represents an admin creating a promo code. Field rules are
// enforced by promo.NewPromoCode in the handler.
type CreatePromoCommand struct { //nolint:recvcheck //using for validation
	admin      order.Actor
	definition PromoDefinition

	guard guard.ConstructorGuard
}

// NewCreatePromoCommand creates the command. Only admins may create promo codes.
func NewCreatePromoCommand(admin order.Actor, definition PromoDefinition) (CreatePromoCommand, error) {
	if err := admin.Validate(); err != nil {
		return CreatePromoCommand{}, err
	}
	if admin.Role() != order.RoleAdmin {
		return CreatePromoCommand{}, errs.NewForbiddenError(admin.Role().String(), "create promo codes")
	}

	definition.Restaurants = append([]kernel.UUID(nil), definition.Restaurants...)
	return CreatePromoCommand{
		admin:      admin,
		definition: definition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePromoCommand) Validate() error {
	return c.guard.Validate(ErrCreatePromoCommandIsNotConstructed)
}

// Admin returns the creating admin.
func (c CreatePromoCommand) Admin() order.Actor {
	return c.admin
}

// Definition returns the promo definition.
func (c CreatePromoCommand) Definition() PromoDefinition {
	return c.definition
}
