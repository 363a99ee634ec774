package http

import (
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := id.Bytes()
	return &u
}

func optionalMoney(m *kernel.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

// optionalString omits empty strings from responses.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toPricing(p queries.PricingView) servers.Pricing {
	return servers.Pricing{
		Subtotal:    p.Subtotal.String(),
		DeliveryFee: p.DeliveryFee.String(),
		Taxes:       p.Taxes.String(),
		Discount:    p.Discount.String(),
		PlatformFee: p.PlatformFee.String(),
		Total:       p.Total.String(),
	}
}

func toOrder(o *order.Order) servers.Order {
	pricing := o.Pricing()
	payment := o.Payment()
	resp := servers.Order{
		Id:           o.ID().Bytes(),
		CustomerId:   o.CustomerID().Bytes(),
		RestaurantId: o.RestaurantID().Bytes(),
		DriverId:     optionalID(o.DriverID()),
		Status:       servers.OrderStatus(o.Status().String()),
		Version:      o.Version(),
		Pricing: servers.Pricing{
			Subtotal:    pricing.Subtotal.String(),
			DeliveryFee: pricing.DeliveryFee.String(),
			Taxes:       pricing.Taxes.String(),
			Discount:    pricing.Discount.String(),
			PlatformFee: pricing.PlatformFee.String(),
			Total:       pricing.Total.String(),
		},
		PaymentMethod:         servers.PaymentMethod(payment.Method),
		PaymentStatus:         servers.PaymentStatus(payment.Status),
		CancellationReason:    optionalString(o.CancellationReason()),
		RefundAmount:          optionalMoney(o.RefundAmount()),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		ActualDeliveryTime:    o.ActualDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
	}
	if applied := o.Promo(); applied != nil {
		resp.PromoCode = optionalString(applied.Code)
	}
	return resp
}

func toOrderDetail(o *queries.GetOrderQueryResponse) servers.OrderDetail {
	items := make([]servers.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		customizations := make([]servers.PricedCustomization, 0, len(item.Customizations))
		for _, c := range item.Customizations {
			customizations = append(customizations, servers.PricedCustomization{
				Name:       c.Name,
				Option:     c.Option,
				PriceDelta: c.PriceDelta.String(),
			})
		}
		items = append(items, servers.OrderItem{
			MenuItemId:     item.MenuItemID.Bytes(),
			Name:           item.Name,
			UnitPrice:      item.UnitPrice.String(),
			Quantity:       item.Quantity,
			Customizations: customizations,
			Instructions:   optionalString(item.Instructions),
		})
	}

	history := make([]servers.StatusEntry, 0, len(o.History))
	for _, entry := range o.History {
		history = append(history, servers.StatusEntry{
			Status:    servers.OrderStatus(entry.Status.String()),
			At:        entry.At,
			ActorId:   entry.ActorID.Bytes(),
			ActorRole: servers.ActorRole(entry.ActorRole.String()),
			Note:      optionalString(entry.Note),
		})
	}

	allowed := make([]servers.OrderStatus, 0, len(o.AllowedTransitions))
	for _, status := range o.AllowedTransitions {
		allowed = append(allowed, servers.OrderStatus(status.String()))
	}

	return servers.OrderDetail{
		Id:           o.ID.Bytes(),
		CustomerId:   o.CustomerID.Bytes(),
		RestaurantId: o.RestaurantID.Bytes(),
		DriverId:     optionalID(o.DriverID),
		Status:       servers.OrderStatus(o.Status.String()),
		Items:        items,
		Pricing:      toPricing(o.Pricing),
		PromoCode:    optionalString(o.PromoCode),
		DeliveryAddress: servers.Address{
			Street:       o.DeliveryAddress.Street,
			City:         o.DeliveryAddress.City,
			PostalCode:   o.DeliveryAddress.PostalCode,
			Latitude:     o.DeliveryAddress.Latitude,
			Longitude:    o.DeliveryAddress.Longitude,
			Instructions: optionalString(o.DeliveryAddress.Instructions),
		},
		ContactPhone:          o.ContactPhone,
		PaymentMethod:         servers.PaymentMethod(o.PaymentMethod),
		PaymentStatus:         servers.PaymentStatus(o.PaymentStatus),
		DistanceKm:            o.DistanceKm,
		CancellationReason:    optionalString(o.CancellationReason),
		RefundAmount:          optionalMoney(o.RefundAmount),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		CreatedAt:             o.CreatedAt,
		History:               history,
		AllowedTransitions:    allowed,
	}
}

func toActiveOrder(o queries.GetActiveOrdersQueryResponse) servers.ActiveOrder {
	return servers.ActiveOrder{
		Id:                    o.ID.Bytes(),
		CustomerId:            o.CustomerID.Bytes(),
		RestaurantId:          o.RestaurantID.Bytes(),
		DriverId:              optionalID(o.DriverID),
		Status:                servers.OrderStatus(o.Status.String()),
		Total:                 o.Total.String(),
		DeliveryCity:          o.DeliveryCity,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		CreatedAt:             o.CreatedAt,
	}
}
