package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads work lists straight from the orders table.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d open orders\n", len(orders))
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order lists.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the actor's open orders, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	where, args := activeScope(actor)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			driver_id,
			status,
			total,
			address_city,
			estimated_delivery_time,
			created_at
		FROM orders
		WHERE status NOT IN ? AND `+where+`
		ORDER BY created_at, id
	`, append([]any{statusStrings(order.TerminalStatuses())}, args...)...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, customerID, restaurantID uuid.UUID
		var driverID uuid.NullUUID
		var status string
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&driverID,
			&status,
			&total,
			&resp.DeliveryCity,
			&resp.EstimatedDeliveryTime,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = nullableUUID(driverID); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		resp.Total = kernel.NewMoney(total)
		resp.EstimatedDeliveryTime = resp.EstimatedDeliveryTime.UTC()
		resp.CreatedAt = resp.CreatedAt.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// activeScope narrows the list to what the actor's role may see.
func activeScope(actor order.Actor) (string, []any) {
	id := actor.ID().Bytes()
	switch actor.Role() {
	case order.RoleCustomer:
		return "customer_id = ?", []any{id}
	case order.RoleRestaurant:
		return "restaurant_id = ?", []any{id}
	case order.RoleDriver:
		return "(driver_id = ? OR (driver_id IS NULL AND status = ?))", []any{id, order.Ready.String()}
	case order.RoleAdmin:
		return "TRUE", nil
	default:
		return "FALSE", nil
	}
}

func nullableUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func statusStrings(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
