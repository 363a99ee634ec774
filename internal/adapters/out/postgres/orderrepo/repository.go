package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/adapters/out/postgres/pgerr"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// ActiveDriverIndex is the partial unique index that allows a driver at most one
// order in assigned, picked or en_route.
const ActiveDriverIndex = "ux_orders_active_driver"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and initial history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	dto.History = historyFromDomain(dto.ID, aggregate.UnsavedHistory())

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError(aggregate.ID(), err)
	}

	aggregate.MarkPersisted(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the changed order conditioned on the version it was loaded with
// and appends the history entries recorded since then.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"driver_id":               dto.DriverID,
			"status":                  dto.Status,
			"payment_status":          dto.Payment.Status,
			"payment_transaction_ref": dto.Payment.TransactionRef,
			"payment_gateway":         dto.Payment.Gateway,
			"payment_paid_at":         dto.Payment.PaidAt,
			"distance_km":             dto.DistanceKm,
			"cancellation_reason":     dto.CancellationReason,
			"refund_amount":           dto.RefundAmount,
			"actual_delivery_time":    dto.ActualDeliveryTime,
			"updated_at":              dto.UpdatedAt,
			"version":                 gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return mapWriteError(aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s was changed since version %d", aggregate.ID(), aggregate.Version()))
	}

	if unsaved := aggregate.UnsavedHistory(); len(unsaved) > 0 {
		history := historyFromDomain(dto.ID, unsaved)
		if err := r.db.WithContext(ctx).Create(&history).Error; err != nil {
			return err
		}
	}

	aggregate.MarkPersisted(aggregate.Version() + 1)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and full history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasActiveOrderForDriver reports whether the driver holds an order in a
// driver-active status, ignoring except when it is set.
func (r *GormOrderRepository) HasActiveOrderForDriver(
	ctx context.Context,
	driverID kernel.UUID,
	except *kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(), statusStrings(order.DriverActiveStatuses()))
	if except != nil {
		query = query.Where("id <> ?", except.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountDeliveredForCustomer counts the customer's delivered orders.
func (r *GormOrderRepository) CountDeliveredForCustomer(ctx context.Context, customerID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), order.Delivered.String()).
		Count(&count).Error
	return count, err
}

func mapWriteError(id kernel.UUID, err error) error {
	if !pgerr.IsUniqueViolation(err) {
		return err
	}
	if pgerr.ConstraintName(err) == ActiveDriverIndex {
		return errs.NewConflictErrorWithCause("driver", "already has an active order", err)
	}
	return errs.NewConflictErrorWithCause("order "+id.String(), "already exists", err)
}

func statusStrings(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
