package restaurantrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCapacityRepository implements ports.RestaurantCapacityRepository with
// single-statement conditional updates.
type GormCapacityRepository struct {
	db *gorm.DB
}

// NewGormCapacityRepository creates a capacity repository bound to db, usually
// the current transaction.
func NewGormCapacityRepository(db *gorm.DB) *GormCapacityRepository {
	return &GormCapacityRepository{db: db}
}

// IncrementOrders adds one order unless the restaurant is at its ceiling.
func (r *GormCapacityRepository) IncrementOrders(ctx context.Context, restaurantID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ? AND (max_concurrent_orders = 0 OR current_orders_count < max_concurrent_orders)",
			restaurantID.Bytes()).
		Update("current_orders_count", gorm.Expr("current_orders_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrFull(ctx, restaurantID)
	}
	return nil
}

// DecrementOrders removes one order, clamping at zero.
func (r *GormCapacityRepository) DecrementOrders(ctx context.Context, restaurantID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", restaurantID.Bytes()).
		Update("current_orders_count", gorm.Expr("GREATEST(current_orders_count - 1, 0)"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", restaurantID.String())
	}
	return nil
}

// ReconcileOrderCounts sets every counter to the number of the restaurant's
// non-terminal orders and returns how many rows were corrected.
func (r *GormCapacityRepository) ReconcileOrderCounts(ctx context.Context) (int64, error) {
	terminal := make([]string, 0, len(order.TerminalStatuses()))
	for _, s := range order.TerminalStatuses() {
		terminal = append(terminal, s.String())
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE restaurants r
		SET current_orders_count = c.open_orders
		FROM (
			SELECT rs.id, COUNT(o.id) AS open_orders
			FROM restaurants rs
			LEFT JOIN orders o ON o.restaurant_id = rs.id AND o.status NOT IN ?
			GROUP BY rs.id
		) c
		WHERE r.id = c.id AND r.current_orders_count <> c.open_orders`, terminal)
	return result.RowsAffected, result.Error
}

func (r *GormCapacityRepository) missingOrFull(ctx context.Context, restaurantID kernel.UUID) error {
	var dto RestaurantDTO
	err := r.db.WithContext(ctx).Select("id").First(&dto, "id = ?", restaurantID.Bytes()).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError("restaurant", restaurantID.String())
	case err != nil:
		return err
	default:
		return errs.NewConflictError("restaurant "+restaurantID.String(), "is at capacity")
	}
}
