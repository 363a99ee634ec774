package ports

import (
	"context"

	"foodorder/internal/core/domain/model/driver"
	"foodorder/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers.
type DriverRepository interface {
	Add(ctx context.Context, d *driver.Driver) error
	Update(ctx context.Context, d *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
