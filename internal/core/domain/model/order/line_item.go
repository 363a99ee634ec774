package order

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("line item must be created via NewLineItem constructor")

// Customization is a selected option on a line item with the price delta it adds.
type Customization struct {
	Name       string
	Option     string
	PriceDelta kernel.Money
}

// LineItem is a snapshot of one catalog item at checkout. The name and prices are
// copied at creation time and never recomputed from the catalog afterwards.
type LineItem struct {
	menuItemID     kernel.UUID
	name           string
	unitPrice      kernel.Money
	quantity       int
	customizations []Customization
	instructions   string
	guard          guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot.
//
// Parameters:
//   - menuItemID: catalog item reference
//   - name: name snapshot (required)
//   - unitPrice: current catalog price, must not be negative
//   - quantity: at least 1
//   - customizations: selected options; deltas must not be negative
//   - instructions: optional free text
//
// Returns:
//   - LineItem: the snapshot
//   - error: joined validation errors
func NewLineItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	customizations []Customization,
	instructions string,
) (LineItem, error) {
	item := LineItem{
		menuItemID:   menuItemID,
		name:         strings.TrimSpace(name),
		unitPrice:    unitPrice,
		quantity:     quantity,
		instructions: strings.TrimSpace(instructions),
		guard:        guard.NewConstructorGuard(),
	}

	validationErrs := []error{menuItemID.Validate()}
	if item.name == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("line item name"))
	}
	if unitPrice.IsNegative() {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("unit price", unitPrice, "0.00", "unbounded"))
	}
	if quantity < 1 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	for _, c := range customizations {
		if c.PriceDelta.IsNegative() {
			validationErrs = append(validationErrs,
				errs.NewValueIsOutOfRangeError("customization price delta", c.PriceDelta, "0.00", "unbounded"))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return LineItem{}, err
	}

	item.customizations = append([]Customization(nil), customizations...)
	return item, nil
}

// Validate checks the LineItem was built by NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

func (li LineItem) Name() string {
	return li.name
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) Instructions() string {
	return li.instructions
}

// Customizations returns a copy of the selected options.
func (li LineItem) Customizations() []Customization {
	return append([]Customization(nil), li.customizations...)
}

// UnitTotal is the unit price plus every customization delta.
func (li LineItem) UnitTotal() kernel.Money {
	total := li.unitPrice
	for _, c := range li.customizations {
		total = total.Add(c.PriceDelta)
	}
	return total
}

// LineTotal is UnitTotal multiplied by the quantity.
func (li LineItem) LineTotal() kernel.Money {
	return li.UnitTotal().MulInt(li.quantity)
}
