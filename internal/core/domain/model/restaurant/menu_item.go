package restaurant

import (
	"foodorder/internal/core/domain/model/kernel"
)

// CustomizationOption is a selectable option of a menu item with its price delta.
type CustomizationOption struct {
	Name       string
	Option     string
	PriceDelta kernel.Money
}

// MenuItem is the catalog's current view of a dish. Price and availability are
// checked, not locked, at checkout.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        kernel.Money
	Available    bool
	Options      []CustomizationOption
}

// FindOption returns the option with the given group name and choice.
func (m MenuItem) FindOption(name, option string) (CustomizationOption, bool) {
	for _, o := range m.Options {
		if o.Name == name && o.Option == option {
			return o, true
		}
	}
	return CustomizationOption{}, false
}
