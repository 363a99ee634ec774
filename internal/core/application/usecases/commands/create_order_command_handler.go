package commands

import (
	"context"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/metrics"
)

// CreateOrderCommandHandler handles checkout.
// It snapshots catalog prices into line items, validates the promo code, prices the
// order and persists it in Pending. The restaurant capacity counter and the promo
// usage counters are incremented in the same transaction as the order insert.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, engine, SystemClock, 40*time.Minute, m)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// created.Status() == order.Pending
type CreateOrderCommandHandler struct {
	uowFactory        CreateOrderUoWFactory
	catalog           ports.Catalog
	engine            services.PricingEngine
	clock             Clock
	estimatedDelivery time.Duration
	metrics           *metrics.Metrics
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// estimatedDelivery is added to the placement time to stamp the informational
// estimated delivery time.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	catalog ports.Catalog,
	engine services.PricingEngine,
	clock Clock,
	estimatedDelivery time.Duration,
	m *metrics.Metrics,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:        uowFactory,
		catalog:           catalog,
		engine:            engine,
		clock:             clock,
		estimatedDelivery: estimatedDelivery,
		metrics:           m,
	}
}

// Handle processes the checkout command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rest, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if err = rest.ValidateAcceptsOrders(); err != nil {
		return nil, err
	}

	items, err := h.snapshotItems(ctx, rest, cmd.Items())
	if err != nil {
		return nil, err
	}

	subtotal, err := h.engine.Subtotal(items)
	if err != nil {
		return nil, err
	}
	if err = rest.ValidateMinimumOrder(subtotal); err != nil {
		return nil, err
	}

	now := h.clock()
	customerID := cmd.Customer().ID()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	var (
		applied *order.AppliedPromo
		code    *promo.PromoCode
	)
	discount := kernel.ZeroMoney()
	if cmd.PromoCode() != "" {
		code, err = h.validatePromo(ctx, uow, cmd.PromoCode(), customerID, subtotal, rest.ID(), now)
		if err != nil {
			return nil, err
		}
		discount = code.CalculateDiscount(subtotal)
		applied = &order.AppliedPromo{Code: code.Code(), Discount: discount}
	}

	pricing, err := h.engine.Price(items, rest.DeliveryFee(), discount, rest.CommissionRate())
	if err != nil {
		return nil, err
	}
	if pricing.Total.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("total", pricing.Total, "0.00", "unbounded")
	}

	created, err := order.NewOrder(order.NewOrderParams{
		ID:                    kernel.NewUUID(),
		CustomerID:            customerID,
		RestaurantID:          rest.ID(),
		RestaurantLocation:    rest.Location(),
		Items:                 items,
		Pricing:               pricing,
		DeliveryAddress:       cmd.Address(),
		ContactPhone:          cmd.ContactPhone(),
		PaymentMethod:         cmd.PaymentMethod(),
		Promo:                 applied,
		EstimatedDeliveryTime: now.Add(h.estimatedDelivery),
		PlacedAt:              now,
	})
	if err != nil {
		return nil, err
	}

	if err = uow.RestaurantCapacityRepository().IncrementOrders(ctx, rest.ID()); err != nil {
		return nil, err
	}

	if code != nil {
		if err = uow.PromoRepository().IncrementUsage(ctx, code.ID(), customerID, now); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if code != nil {
		h.metrics.PromoRedeemed(code.Code())
	}
	h.metrics.TransitionAccepted(created.Status().String())

	return created, nil
}

func (h *CreateOrderCommandHandler) snapshotItems(
	ctx context.Context,
	rest *restaurant.Restaurant,
	requested []OrderItemRequest,
) ([]order.LineItem, error) {
	ids := make([]kernel.UUID, 0, len(requested))
	for _, r := range requested {
		ids = append(ids, r.MenuItemID)
	}

	menu, err := h.catalog.GetMenuItems(ctx, rest.ID(), ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]restaurant.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	items := make([]order.LineItem, 0, len(requested))
	for _, r := range requested {
		m, ok := byID[r.MenuItemID]
		if !ok || !m.RestaurantID.IsEqual(rest.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menu item",
				fmt.Errorf("%s is not on the menu of restaurant %s", r.MenuItemID, rest.ID()),
			)
		}
		if !m.Available {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu item", fmt.Errorf("%s is not available", m.Name))
		}

		customizations := make([]order.Customization, 0, len(r.Customizations))
		for _, sel := range r.Customizations {
			opt, found := m.FindOption(sel.Name, sel.Option)
			if !found {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"customization",
					fmt.Errorf("%s: %s is not offered for %s", sel.Name, sel.Option, m.Name),
				)
			}
			customizations = append(customizations, order.Customization{
				Name:       opt.Name,
				Option:     opt.Option,
				PriceDelta: opt.PriceDelta,
			})
		}

		item, err := order.NewLineItem(m.ID, m.Name, m.Price, r.Quantity, customizations, r.Instructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (h *CreateOrderCommandHandler) validatePromo(
	ctx context.Context,
	uow CreateOrderUoW,
	code string,
	customerID kernel.UUID,
	subtotal kernel.Money,
	restaurantID kernel.UUID,
	now time.Time,
) (*promo.PromoCode, error) {
	promoRepo := uow.PromoRepository()

	pc, err := promoRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	uses, err := promoRepo.UserUsage(ctx, pc.ID(), customerID)
	if err != nil {
		return nil, err
	}

	delivered, err := uow.OrderRepository().CountDeliveredForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	redeemer := promo.Redeemer{UserID: customerID, Uses: uses, IsNewUser: delivered == 0}
	if err = pc.IsValidFor(redeemer, subtotal, restaurantID, now); err != nil {
		return nil, err
	}

	return pc, nil
}
