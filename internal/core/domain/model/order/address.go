package order

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed is returned when a DeliveryAddress was not created via NewDeliveryAddress.
var ErrDeliveryAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery address must be created via NewDeliveryAddress constructor",
)

// DeliveryAddress is where the order is delivered.
type DeliveryAddress struct {
	street       string
	city         string
	postalCode   string
	location     kernel.Location
	instructions string
	guard        guard.ConstructorGuard
}

// NewDeliveryAddress validates and creates a delivery address. Street, city and a
// constructed location are required.
func NewDeliveryAddress(street, city, postalCode string, location kernel.Location, instructions string) (DeliveryAddress, error) {
	addr := DeliveryAddress{
		street:       strings.TrimSpace(street),
		city:         strings.TrimSpace(city),
		postalCode:   strings.TrimSpace(postalCode),
		location:     location,
		instructions: strings.TrimSpace(instructions),
		guard:        guard.NewConstructorGuard(),
	}

	var streetErr, cityErr error
	if addr.street == "" {
		streetErr = errs.NewValueIsRequiredError("street")
	}
	if addr.city == "" {
		cityErr = errs.NewValueIsRequiredError("city")
	}
	if err := errors.Join(streetErr, cityErr, location.Validate()); err != nil {
		return DeliveryAddress{}, err
	}

	return addr, nil
}

// Validate checks the address was built by NewDeliveryAddress.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

func (a DeliveryAddress) Street() string { return a.street }
func (a DeliveryAddress) City() string { return a.city }
func (a DeliveryAddress) PostalCode() string { return a.postalCode }
func (a DeliveryAddress) Location() kernel.Location { return a.location }
func (a DeliveryAddress) Instructions() string { return a.instructions }
