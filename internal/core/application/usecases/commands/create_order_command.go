package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// SelectedCustomization names one option the customer picked for a menu item.
type SelectedCustomization struct {
	Name   string
	Option string
}

// OrderItemRequest is one requested catalog item. Prices are never taken from the
// request; they are resolved from the catalog at checkout.
type OrderItemRequest struct {
	MenuItemID     kernel.UUID
	Quantity       int
	Customizations []SelectedCustomization
	Instructions   string
}

// CreateOrderCommand represents a customer checkout.
//
// Example:
//
//	customer, _ := order.NewActor(customerID, order.RoleCustomer)
//	cmd, err := NewCreateOrderCommand(customer, restaurantID, items, address, "+15550100", order.PaymentCard, "SAVE20")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer      order.Actor
	restaurantID  kernel.UUID
	items         []OrderItemRequest
	address       order.DeliveryAddress
	contactPhone  string
	paymentMethod order.PaymentMethod
	promoCode     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command.
// The actor must be a customer, at least one item is required and every item needs
// a quantity of at least 1. An empty promo code means no promo; a non-empty one is
// normalized to upper case and must be well formed.
func NewCreateOrderCommand(
	customer order.Actor,
	restaurantID kernel.UUID,
	items []OrderItemRequest,
	address order.DeliveryAddress,
	contactPhone string,
	paymentMethod order.PaymentMethod,
	promoCode string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		contactPhone:  strings.TrimSpace(contactPhone),
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setPromoCode(promoCode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the ordering customer.
func (c CreateOrderCommand) Customer() order.Actor {
	return c.customer
}

// RestaurantID returns the restaurant being ordered from.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns a copy of the requested items.
func (c CreateOrderCommand) Items() []OrderItemRequest {
	return append([]OrderItemRequest(nil), c.items...)
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() order.DeliveryAddress {
	return c.address
}

// ContactPhone returns the customer contact phone.
func (c CreateOrderCommand) ContactPhone() string {
	return c.contactPhone
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PromoCode returns the normalized promo code or an empty string.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

func (c *CreateOrderCommand) setCustomer(customer order.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if customer.Role() != order.RoleCustomer {
		return errs.NewForbiddenError(customer.Role().String(), "place orders")
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	validationErrs := make([]error, 0)
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			validationErrs = append(validationErrs, err)
		}
		if item.Quantity < 1 {
			validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, "unbounded"))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}

	c.items = append([]OrderItemRequest(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPromoCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return nil
	}

	normalized, err := promo.NormalizeCode(code)
	if err != nil {
		return err
	}

	c.promoCode = normalized
	return nil
}
