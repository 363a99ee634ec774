// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and status history live in child tables; the row itself carries the
// pricing snapshot and the optimistic-lock version.
type OrderDTO struct {
	ID                    uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	RestaurantID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	DriverID              *uuid.UUID          `gorm:"type:uuid"`
	Status                string              `gorm:"type:varchar(16);not null;index"`
	RestaurantLocation    LocationDTO         `gorm:"embedded;embeddedPrefix:restaurant_"`
	Address               AddressDTO          `gorm:"embedded;embeddedPrefix:address_"`
	ContactPhone          string              `gorm:"type:varchar(16);not null"`
	Payment               PaymentDTO          `gorm:"embedded;embeddedPrefix:payment_"`
	Pricing               PricingDTO          `gorm:"embedded"`
	PromoCode             *string             `gorm:"type:varchar(32)"`
	PromoDiscount         decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	DistanceKm            *float64
	CancellationReason    string
	RefundAmount          decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	EstimatedDeliveryTime time.Time           `gorm:"not null"`
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time           `gorm:"not null;autoCreateTime:false"`
	UpdatedAt             time.Time           `gorm:"not null;autoUpdateTime:false"`
	Version               int                 `gorm:"not null"`

	Items   []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is an embedded latitude/longitude pair.
type LocationDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

// AddressDTO is the embedded delivery address.
type AddressDTO struct {
	Street       string  `gorm:"not null"`
	City         string  `gorm:"not null"`
	PostalCode   string  `gorm:"type:varchar(16);not null"`
	Latitude     float64 `gorm:"not null"`
	Longitude    float64 `gorm:"not null"`
	Instructions string
}

// PaymentDTO is the embedded payment state.
type PaymentDTO struct {
	Method         string `gorm:"type:varchar(16);not null"`
	Status         string `gorm:"type:varchar(16);not null"`
	TransactionRef string
	Gateway        string
	PaidAt         *time.Time
}

// PricingDTO is the embedded pricing snapshot. Amounts are stored as numeric so
// that no rounding happens in the database.
type PricingDTO struct {
	Subtotal         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Taxes            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlatformFee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CommissionRate   decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// OrderItemDTO is one line item snapshot.
type OrderItemDTO struct {
	OrderID        uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	Position       int                                    `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID     uuid.UUID                              `gorm:"type:uuid;not null"`
	Name           string                                 `gorm:"not null"`
	UnitPrice      decimal.Decimal                        `gorm:"type:numeric(12,2);not null"`
	Quantity       int                                    `gorm:"not null"`
	Customizations datatypes.JSONType[[]CustomizationDTO] `gorm:"not null"`
	Instructions   string
}

// TableName specifies the database table name for line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// CustomizationDTO is the JSON form of a selected option.
type CustomizationDTO struct {
	Name       string          `json:"name"`
	Option     string          `json:"option"`
	PriceDelta decimal.Decimal `json:"priceDelta"`
}

// StatusHistoryDTO is one append-only history entry. Rows are never updated.
type StatusHistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(16);not null"`
	At        time.Time `gorm:"not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole string    `gorm:"type:varchar(16);not null"`
	Note      string
}

// TableName specifies the database table name for history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its row. Items are included; history
// is not, because only unsaved entries are ever written.
func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	pricing := o.Pricing()
	payment := o.Payment()
	address := o.DeliveryAddress()

	dto := OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		DriverID:     driverID,
		Status:       o.Status().String(),
		RestaurantLocation: LocationDTO{
			Latitude:  o.RestaurantLocation().Latitude(),
			Longitude: o.RestaurantLocation().Longitude(),
		},
		Address: AddressDTO{
			Street:       address.Street(),
			City:         address.City(),
			PostalCode:   address.PostalCode(),
			Latitude:     address.Location().Latitude(),
			Longitude:    address.Location().Longitude(),
			Instructions: address.Instructions(),
		},
		ContactPhone: o.ContactPhone(),
		Payment: PaymentDTO{
			Method:         string(payment.Method),
			Status:         string(payment.Status),
			TransactionRef: payment.TransactionRef,
			Gateway:        payment.Gateway,
			PaidAt:         payment.PaidAt,
		},
		Pricing: PricingDTO{
			Subtotal:         pricing.Subtotal.Decimal(),
			DeliveryFee:      pricing.DeliveryFee.Decimal(),
			Taxes:            pricing.Taxes.Decimal(),
			Discount:         pricing.Discount.Decimal(),
			PlatformFee:      pricing.PlatformFee.Decimal(),
			Total:            pricing.Total.Decimal(),
			CommissionRate:   pricing.Commission.Rate,
			CommissionAmount: pricing.Commission.Amount.Decimal(),
		},
		DistanceKm:            o.DistanceKm(),
		CancellationReason:    o.CancellationReason(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		ActualDeliveryTime:    o.ActualDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             lastChange(o),
	}

	if p := o.Promo(); p != nil {
		code := p.Code
		dto.PromoCode = &code
		dto.PromoDiscount = decimal.NewNullDecimal(p.Discount.Decimal())
	}
	if refund := o.RefundAmount(); refund != nil {
		dto.RefundAmount = decimal.NewNullDecimal(refund.Decimal())
	}

	for i, item := range o.Items() {
		dto.Items = append(dto.Items, itemFromDomain(dto.ID, i, item))
	}

	return dto
}

func itemFromDomain(orderID uuid.UUID, position int, item order.LineItem) OrderItemDTO {
	customizations := make([]CustomizationDTO, 0, len(item.Customizations()))
	for _, c := range item.Customizations() {
		customizations = append(customizations, CustomizationDTO{
			Name:       c.Name,
			Option:     c.Option,
			PriceDelta: c.PriceDelta.Decimal(),
		})
	}

	return OrderItemDTO{
		OrderID:        orderID,
		Position:       position,
		MenuItemID:     item.MenuItemID().Bytes(),
		Name:           item.Name(),
		UnitPrice:      item.UnitPrice().Decimal(),
		Quantity:       item.Quantity(),
		Customizations: datatypes.NewJSONType(customizations),
		Instructions:   item.Instructions(),
	}
}

func historyFromDomain(orderID uuid.UUID, records []order.StatusRecord) []StatusHistoryDTO {
	dtos := make([]StatusHistoryDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, StatusHistoryDTO{
			OrderID:   orderID,
			Status:    r.Status.String(),
			At:        r.At,
			ActorID:   r.ActorID.Bytes(),
			ActorRole: string(r.ActorRole),
			Note:      r.Note,
		})
	}
	return dtos
}

func lastChange(o *order.Order) time.Time {
	history := o.History()
	if len(history) == 0 {
		return o.CreatedAt()
	}
	return history[len(history)-1].At
}

// toDomain converts a row with its preloaded items and history back into an
// aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	ids, err := restoreIDs(dto)
	if err != nil {
		return nil, err
	}

	restaurantLocation, err := kernel.NewLocation(dto.RestaurantLocation.Latitude, dto.RestaurantLocation.Longitude)
	if err != nil {
		return nil, err
	}
	addressLocation, err := kernel.NewLocation(dto.Address.Latitude, dto.Address.Longitude)
	if err != nil {
		return nil, err
	}
	address, err := order.NewDeliveryAddress(
		dto.Address.Street, dto.Address.City, dto.Address.PostalCode, addressLocation, dto.Address.Instructions)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, fmt.Errorf("line item %d: %w", itemDTO.Position, itemErr)
		}
		items = append(items, item)
	}

	history := make([]order.StatusRecord, 0, len(dto.History))
	for _, h := range dto.History {
		record, recordErr := historyToDomain(h)
		if recordErr != nil {
			return nil, recordErr
		}
		history = append(history, record)
	}

	params := order.RestoreParams{
		NewOrderParams: order.NewOrderParams{
			ID:                 ids.order,
			CustomerID:         ids.customer,
			RestaurantID:       ids.restaurant,
			RestaurantLocation: restaurantLocation,
			Items:              items,
			Pricing: order.PricingBreakdown{
				Subtotal:    kernel.NewMoney(dto.Pricing.Subtotal),
				DeliveryFee: kernel.NewMoney(dto.Pricing.DeliveryFee),
				Taxes:       kernel.NewMoney(dto.Pricing.Taxes),
				Discount:    kernel.NewMoney(dto.Pricing.Discount),
				PlatformFee: kernel.NewMoney(dto.Pricing.PlatformFee),
				Total:       kernel.NewMoney(dto.Pricing.Total),
				Commission: order.Commission{
					Rate:   dto.Pricing.CommissionRate,
					Amount: kernel.NewMoney(dto.Pricing.CommissionAmount),
				},
			},
			DeliveryAddress:       address,
			ContactPhone:          dto.ContactPhone,
			PaymentMethod:         order.PaymentMethod(dto.Payment.Method),
			EstimatedDeliveryTime: dto.EstimatedDeliveryTime.UTC(),
			PlacedAt:              dto.CreatedAt.UTC(),
		},
		DriverID: ids.driver,
		Payment: order.PaymentInfo{
			Method:         order.PaymentMethod(dto.Payment.Method),
			Status:         order.PaymentStatus(dto.Payment.Status),
			TransactionRef: dto.Payment.TransactionRef,
			Gateway:        dto.Payment.Gateway,
			PaidAt:         utcPtr(dto.Payment.PaidAt),
		},
		History:            history,
		DistanceKm:         dto.DistanceKm,
		CancellationReason: dto.CancellationReason,
		ActualDeliveryTime: utcPtr(dto.ActualDeliveryTime),
		Version:            dto.Version,
	}

	if dto.PromoCode != nil {
		params.Promo = &order.AppliedPromo{
			Code:     *dto.PromoCode,
			Discount: kernel.NewMoney(dto.PromoDiscount.Decimal),
		}
	}
	if dto.RefundAmount.Valid {
		refund := kernel.NewMoney(dto.RefundAmount.Decimal)
		params.RefundAmount = &refund
	}

	return order.RestoreOrder(params)
}

type restoredIDs struct {
	order      kernel.UUID
	customer   kernel.UUID
	restaurant kernel.UUID
	driver     *kernel.UUID
}

func restoreIDs(dto OrderDTO) (restoredIDs, error) {
	var ids restoredIDs
	var err error

	if ids.order, err = kernel.UUIDFromBytes(dto.ID[:]); err != nil {
		return ids, err
	}
	if ids.customer, err = kernel.UUIDFromBytes(dto.CustomerID[:]); err != nil {
		return ids, err
	}
	if ids.restaurant, err = kernel.UUIDFromBytes(dto.RestaurantID[:]); err != nil {
		return ids, err
	}
	if dto.DriverID != nil {
		driverID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return ids, driverErr
		}
		ids.driver = &driverID
	}

	return ids, nil
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	stored := dto.Customizations.Data()
	customizations := make([]order.Customization, 0, len(stored))
	for _, c := range stored {
		customizations = append(customizations, order.Customization{
			Name:       c.Name,
			Option:     c.Option,
			PriceDelta: kernel.NewMoney(c.PriceDelta),
		})
	}

	return order.NewLineItem(
		menuItemID, dto.Name, kernel.NewMoney(dto.UnitPrice), dto.Quantity, customizations, dto.Instructions)
}

func historyToDomain(dto StatusHistoryDTO) (order.StatusRecord, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.StatusRecord{}, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.StatusRecord{}, err
	}
	role, err := order.ParseRole(dto.ActorRole)
	if err != nil {
		return order.StatusRecord{}, err
	}

	return order.StatusRecord{
		Status:    status,
		At:        dto.At.UTC(),
		ActorID:   actorID,
		ActorRole: role,
		Note:      dto.Note,
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
