package driver

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is a delivery partner that claims or is dispatched to ready orders.
//
// Business rules:
//   - a driver must have a valid UUID and a non-empty name
//   - an inactive driver (suspended by the platform) can never be dispatched
//   - availability is toggled by the driver; dispatch requires it
//   - the one-active-order rule is enforced on orders, not here
//
// Example usage:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Ravi", time.Now())
//	if err != nil {
//	    // Handle construction error
//	}
//	d.SetAvailability(true, time.Now())
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the human-readable name of the driver
	name string
	// active is false when the platform suspended the driver
	active bool
	// available is the driver's own on/off-shift toggle
	available bool
	// updatedAt is the time of the last change
	updatedAt time.Time
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates an active driver that is off shift.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - name: human-readable name (must be non-empty)
//   - now: creation time
//
// Returns:
//   - *Driver: the driver
//   - error: aggregated validation errors
func NewDriver(id kernel.UUID, name string, now time.Time) (*Driver, error) {
	d := &Driver{
		active:    true,
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from storage.
func RestoreDriver(id kernel.UUID, name string, active, available bool, updatedAt time.Time) (*Driver, error) {
	d, err := NewDriver(id, name, updatedAt)
	if err != nil {
		return nil, err
	}

	d.active = active
	d.available = available
	return d, nil
}

// Validate checks the driver was built by NewDriver or RestoreDriver.
func (d *Driver) Validate() error {
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// SetAvailability switches the driver on or off shift.
// An inactive driver cannot go on shift.
func (d *Driver) SetAvailability(available bool, now time.Time) error {
	if available && !d.active {
		return errs.NewConflictError("driver "+d.id.String(), "is inactive and cannot go on shift")
	}

	d.available = available
	d.updatedAt = now.UTC()
	return nil
}

// Deactivate suspends the driver and takes them off shift.
func (d *Driver) Deactivate(now time.Time) {
	d.active = false
	d.available = false
	d.updatedAt = now.UTC()
}

// ValidateDispatchable checks an admin may dispatch this driver.
//
// Returns:
//   - nil when the driver is active and available
//   - *errs.ConflictError otherwise
func (d *Driver) ValidateDispatchable() error {
	if !d.active {
		return errs.NewConflictError("driver "+d.id.String(), "is not active")
	}
	if !d.available {
		return errs.NewConflictError("driver "+d.id.String(), "is not available")
	}
	return nil
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) IsActive() bool {
	return d.active
}

func (d *Driver) IsAvailable() bool {
	return d.available
}

func (d *Driver) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
