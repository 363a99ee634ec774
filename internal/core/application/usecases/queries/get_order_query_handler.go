package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order, its line items and its history with
// three plain selects.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderHeaderRow struct {
	ID                    uuid.UUID
	CustomerID            uuid.UUID
	RestaurantID          uuid.UUID
	DriverID              uuid.NullUUID
	Status                string
	Subtotal              decimal.Decimal
	DeliveryFee           decimal.Decimal
	Taxes                 decimal.Decimal
	Discount              decimal.Decimal
	PlatformFee           decimal.Decimal
	Total                 decimal.Decimal
	PromoCode             sql.NullString
	AddressStreet         string
	AddressCity           string
	AddressPostalCode     string
	AddressLatitude       float64
	AddressLongitude      float64
	AddressInstructions   string
	ContactPhone          string
	PaymentMethod         string
	PaymentStatus         string
	DistanceKm            sql.NullFloat64
	CancellationReason    string
	RefundAmount          decimal.NullDecimal
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    sql.NullTime
	CreatedAt             time.Time
}

type orderItemRow struct {
	MenuItemID     uuid.UUID
	Name           string
	UnitPrice      decimal.Decimal
	Quantity       int
	Customizations []byte
	Instructions   string
}

type customizationRow struct {
	Name       string          `json:"name"`
	Option     string          `json:"option"`
	PriceDelta decimal.Decimal `json:"priceDelta"`
}

type historyRow struct {
	Status    string
	At        time.Time
	ActorID   uuid.UUID
	ActorRole string
	Note      string
}

// Handle returns the order when the actor may see it.
//
// Returns:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.ForbiddenError when the actor has no relation to the order
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	var header orderHeaderRow
	result := db.Raw(`
		SELECT
			id, customer_id, restaurant_id, driver_id, status,
			subtotal, delivery_fee, taxes, discount, platform_fee, total, promo_code,
			address_street, address_city, address_postal_code,
			address_latitude, address_longitude, address_instructions,
			contact_phone, payment_method, payment_status,
			distance_km, cancellation_reason, refund_amount,
			estimated_delivery_time, actual_delivery_time, created_at
		FROM orders
		WHERE id = ?
	`, orderID).Scan(&header)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	resp, err := headerToResponse(header)
	if err != nil {
		return nil, err
	}
	if !canView(query.Actor(), resp) {
		return nil, errs.NewForbiddenError(query.Actor().String(), "view order "+resp.ID.String())
	}
	resp.AllowedTransitions = order.AllowedTransitions(resp.Status, query.Actor().Role())

	var items []orderItemRow
	err = db.Raw(`
		SELECT menu_item_id, name, unit_price, quantity, customizations, instructions
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if resp.Items, err = itemsToViews(items); err != nil {
		return nil, err
	}

	var history []historyRow
	err = db.Raw(`
		SELECT status, at, actor_id, actor_role, note
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Scan(&history).Error
	if err != nil {
		return nil, err
	}
	if resp.History, err = historyToViews(history); err != nil {
		return nil, err
	}

	return resp, nil
}

func canView(actor order.Actor, o *GetOrderQueryResponse) bool {
	switch actor.Role() {
	case order.RoleAdmin:
		return true
	case order.RoleCustomer:
		return actor.ID().IsEqual(o.CustomerID)
	case order.RoleRestaurant:
		return actor.ID().IsEqual(o.RestaurantID)
	case order.RoleDriver:
		if o.DriverID == nil {
			return o.Status == order.Ready
		}
		return actor.ID().IsEqual(*o.DriverID)
	default:
		return false
	}
}

func headerToResponse(row orderHeaderRow) (*GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := nullableUUID(row.DriverID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	resp := &GetOrderQueryResponse{
		ID:           id,
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		DriverID:     driverID,
		Status:       status,
		Pricing: PricingView{
			Subtotal:    kernel.NewMoney(row.Subtotal),
			DeliveryFee: kernel.NewMoney(row.DeliveryFee),
			Taxes:       kernel.NewMoney(row.Taxes),
			Discount:    kernel.NewMoney(row.Discount),
			PlatformFee: kernel.NewMoney(row.PlatformFee),
			Total:       kernel.NewMoney(row.Total),
		},
		PromoCode: row.PromoCode.String,
		DeliveryAddress: AddressView{
			Street:       row.AddressStreet,
			City:         row.AddressCity,
			PostalCode:   row.AddressPostalCode,
			Latitude:     row.AddressLatitude,
			Longitude:    row.AddressLongitude,
			Instructions: row.AddressInstructions,
		},
		ContactPhone:          row.ContactPhone,
		PaymentMethod:         row.PaymentMethod,
		PaymentStatus:         row.PaymentStatus,
		CancellationReason:    row.CancellationReason,
		EstimatedDeliveryTime: row.EstimatedDeliveryTime.UTC(),
		CreatedAt:             row.CreatedAt.UTC(),
	}
	if row.DistanceKm.Valid {
		d := row.DistanceKm.Float64
		resp.DistanceKm = &d
	}
	if row.RefundAmount.Valid {
		refund := kernel.NewMoney(row.RefundAmount.Decimal)
		resp.RefundAmount = &refund
	}
	if row.ActualDeliveryTime.Valid {
		at := row.ActualDeliveryTime.Time.UTC()
		resp.ActualDeliveryTime = &at
	}
	return resp, nil
}

func itemsToViews(rows []orderItemRow) ([]OrderItemView, error) {
	items := make([]OrderItemView, 0, len(rows))
	for _, row := range rows {
		menuItemID, err := kernel.UUIDFromBytes(row.MenuItemID[:])
		if err != nil {
			return nil, err
		}

		var stored []customizationRow
		if len(row.Customizations) > 0 {
			if err = json.Unmarshal(row.Customizations, &stored); err != nil {
				return nil, err
			}
		}
		customizations := make([]CustomizationView, 0, len(stored))
		for _, c := range stored {
			customizations = append(customizations, CustomizationView{
				Name:       c.Name,
				Option:     c.Option,
				PriceDelta: kernel.NewMoney(c.PriceDelta),
			})
		}

		items = append(items, OrderItemView{
			MenuItemID:     menuItemID,
			Name:           row.Name,
			UnitPrice:      kernel.NewMoney(row.UnitPrice),
			Quantity:       row.Quantity,
			Customizations: customizations,
			Instructions:   row.Instructions,
		})
	}
	return items, nil
}

func historyToViews(rows []historyRow) ([]StatusEntryView, error) {
	history := make([]StatusEntryView, 0, len(rows))
	for _, row := range rows {
		status, err := order.ParseStatus(row.Status)
		if err != nil {
			return nil, err
		}
		role, err := order.ParseRole(row.ActorRole)
		if err != nil {
			return nil, err
		}
		actorID, err := kernel.UUIDFromBytes(row.ActorID[:])
		if err != nil {
			return nil, err
		}
		history = append(history, StatusEntryView{
			Status:    status,
			At:        row.At.UTC(),
			ActorID:   actorID,
			ActorRole: role,
			Note:      row.Note,
		})
	}
	return history, nil
}
