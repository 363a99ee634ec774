package restaurant

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created via NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Params describes a restaurant as returned by the catalog.
type Params struct {
	ID                  kernel.UUID
	Name                string
	Active              bool
	Open                bool
	Approved            bool
	MinOrderValue       kernel.Money
	DeliveryFee         kernel.Money
	CommissionRate      decimal.Decimal
	Location            kernel.Location
	MaxConcurrentOrders int
	CurrentOrdersCount  int
}

// Restaurant is the catalog's view of a restaurant at checkout time. Only the
// capacity counter is mutated by this service, and only through storage.
type Restaurant struct {
	id                  kernel.UUID
	name                string
	active              bool
	open                bool
	approved            bool
	minOrderValue       kernel.Money
	deliveryFee         kernel.Money
	commissionRate      decimal.Decimal
	location            kernel.Location
	maxConcurrentOrders int
	currentOrdersCount  int
	guard               guard.ConstructorGuard
}

// NewRestaurant validates a catalog snapshot.
//
// Returns:
//   - *Restaurant: the snapshot
//   - error: joined errors for an invalid id or location, an empty name, negative
//     amounts, a commission rate outside [0, 100] or negative capacity values
func NewRestaurant(p Params) (*Restaurant, error) {
	validationErrs := []error{p.ID.Validate(), p.Location.Validate()}

	if strings.TrimSpace(p.Name) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("restaurant name"))
	}
	if p.MinOrderValue.IsNegative() {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("min order value", p.MinOrderValue, "0.00", "unbounded"))
	}
	if p.DeliveryFee.IsNegative() {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("delivery fee", p.DeliveryFee, "0.00", "unbounded"))
	}
	if p.CommissionRate.IsNegative() || p.CommissionRate.GreaterThan(decimal.NewFromInt(100)) {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("commission rate", p.CommissionRate, 0, 100))
	}
	if p.MaxConcurrentOrders < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("max concurrent orders", p.MaxConcurrentOrders, 0, "unbounded"))
	}
	if p.CurrentOrdersCount < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("current orders count", p.CurrentOrdersCount, 0, "unbounded"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:                  p.ID,
		name:                strings.TrimSpace(p.Name),
		active:              p.Active,
		open:                p.Open,
		approved:            p.Approved,
		minOrderValue:       p.MinOrderValue,
		deliveryFee:         p.DeliveryFee,
		commissionRate:      p.CommissionRate,
		location:            p.Location,
		maxConcurrentOrders: p.MaxConcurrentOrders,
		currentOrdersCount:  p.CurrentOrdersCount,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the restaurant was built by NewRestaurant.
func (r *Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ValidateAcceptsOrders checks the restaurant is active, approved and open.
// Capacity is checked atomically by storage when the counter is incremented.
func (r *Restaurant) ValidateAcceptsOrders() error {
	switch {
	case !r.active:
		return errs.NewValueIsInvalidErrorWithCause("restaurant", errors.New("restaurant is not active"))
	case !r.approved:
		return errs.NewValueIsInvalidErrorWithCause("restaurant", errors.New("restaurant is not approved"))
	case !r.open:
		return errs.NewValueIsInvalidErrorWithCause("restaurant", errors.New("restaurant is currently closed"))
	}
	return nil
}

// ValidateMinimumOrder checks the subtotal reaches the minimum order value.
func (r *Restaurant) ValidateMinimumOrder(subtotal kernel.Money) error {
	if subtotal.LessThan(r.minOrderValue) {
		return errs.NewValueIsOutOfRangeError("subtotal", subtotal, r.minOrderValue, "unbounded")
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) IsActive() bool {
	return r.active
}

func (r *Restaurant) IsOpen() bool {
	return r.open
}

func (r *Restaurant) IsApproved() bool {
	return r.approved
}

func (r *Restaurant) MinOrderValue() kernel.Money {
	return r.minOrderValue
}

func (r *Restaurant) DeliveryFee() kernel.Money {
	return r.deliveryFee
}

// CommissionRate is in percent.
func (r *Restaurant) CommissionRate() decimal.Decimal {
	return r.commissionRate
}

func (r *Restaurant) Location() kernel.Location {
	return r.location
}

// MaxConcurrentOrders is the capacity ceiling; 0 means unlimited.
func (r *Restaurant) MaxConcurrentOrders() int {
	return r.maxConcurrentOrders
}

func (r *Restaurant) CurrentOrdersCount() int {
	return r.currentOrdersCount
}
