package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// NewOrderParams carries everything fixed at checkout.
type NewOrderParams struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	RestaurantLocation    kernel.Location
	Items                 []LineItem
	Pricing               PricingBreakdown
	DeliveryAddress       DeliveryAddress
	ContactPhone          string
	PaymentMethod         PaymentMethod
	Promo                 *AppliedPromo
	EstimatedDeliveryTime time.Time
	PlacedAt              time.Time
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	NewOrderParams

	DriverID           *kernel.UUID
	Payment            PaymentInfo
	History            []StatusRecord
	DistanceKm         *float64
	CancellationReason string
	RefundAmount       *kernel.Money
	ActualDeliveryTime *time.Time
	Version            int
}

// Order is the aggregate root of a single checkout. It owns the status history and
// is mutated only through the transitions of the state machine in fsm.go.
//
// Order follows these invariants:
//   - the current status is the status of the last history entry
//   - history is append-only; each accepted transition appends exactly one entry
//   - a rejected transition changes nothing
//   - line item and pricing snapshots never change after creation
//   - pricing total is never negative
type Order struct {
	id                    kernel.UUID
	customerID            kernel.UUID
	restaurantID          kernel.UUID
	driverID              *kernel.UUID
	restaurantLocation    kernel.Location
	items                 []LineItem
	pricing               PricingBreakdown
	deliveryAddress       DeliveryAddress
	contactPhone          string
	payment               PaymentInfo
	promo                 *AppliedPromo
	history               []StatusRecord
	distanceKm            *float64
	cancellationReason    string
	refundAmount          *kernel.Money
	estimatedDeliveryTime time.Time
	actualDeliveryTime    *time.Time
	createdAt             time.Time

	// version is the optimistic-lock version of the stored row, 0 until first stored.
	version int
	// persistedHistory is the number of history entries already stored.
	persistedHistory int
	events           []StatusChanged

	guard guard.ConstructorGuard
}

// NewOrder places an order in the Pending status.
//
// Parameters:
//   - params: checkout data; identifiers, restaurant location and address must be
//     constructed, at least one line item is required, the phone must be 7-15 digits
//     with an optional leading "+", and the pricing total must not be negative
//
// Returns:
//   - *Order: the pending order with a single history entry attributed to the customer
//   - error: joined validation errors
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//	    ID:              kernel.NewUUID(),
//	    CustomerID:      customerID,
//	    RestaurantID:    restaurantID,
//	    Items:           items,
//	    Pricing:         breakdown,
//	    DeliveryAddress: address,
//	    ContactPhone:    "+15551234567",
//	    PaymentMethod:   order.PaymentCard,
//	    PlacedAt:        time.Now(),
//	})
func NewOrder(params NewOrderParams) (*Order, error) {
	if err := validateNewOrderParams(params); err != nil {
		return nil, err
	}

	placedAt := params.PlacedAt.UTC()
	o := &Order{
		id:                    params.ID,
		customerID:            params.CustomerID,
		restaurantID:          params.RestaurantID,
		restaurantLocation:    params.RestaurantLocation,
		items:                 append([]LineItem(nil), params.Items...),
		pricing:               params.Pricing,
		deliveryAddress:       params.DeliveryAddress,
		contactPhone:          strings.TrimSpace(params.ContactPhone),
		payment:               PaymentInfo{Method: params.PaymentMethod, Status: PaymentPending},
		promo:                 copyPromo(params.Promo),
		estimatedDeliveryTime: params.EstimatedDeliveryTime.UTC(),
		createdAt:             placedAt,
		guard:                 guard.NewConstructorGuard(),
	}

	o.appendHistory(StatusRecord{
		Status:    Pending,
		At:        placedAt,
		ActorID:   params.CustomerID,
		ActorRole: RoleCustomer,
		Note:      "order placed",
	})

	return o, nil
}

// RestoreOrder rebuilds an order from storage without recording new events.
func RestoreOrder(params RestoreParams) (*Order, error) {
	if err := validateNewOrderParams(params.NewOrderParams); err != nil {
		return nil, err
	}
	if len(params.History) == 0 {
		return nil, errs.NewValueIsRequiredError("status history")
	}
	for _, record := range params.History {
		if err := record.Status.Validate(); err != nil {
			return nil, err
		}
	}
	if err := errors.Join(
		validatePaymentInfo(params.Payment),
		validateDriverConsistency(params.History[len(params.History)-1].Status, params.DriverID),
	); err != nil {
		return nil, err
	}

	history := append([]StatusRecord(nil), params.History...)

	return &Order{
		id:                    params.ID,
		customerID:            params.CustomerID,
		restaurantID:          params.RestaurantID,
		driverID:              copyUUID(params.DriverID),
		restaurantLocation:    params.RestaurantLocation,
		items:                 append([]LineItem(nil), params.Items...),
		pricing:               params.Pricing,
		deliveryAddress:       params.DeliveryAddress,
		contactPhone:          params.ContactPhone,
		payment:               params.Payment,
		promo:                 copyPromo(params.Promo),
		history:               history,
		distanceKm:            params.DistanceKm,
		cancellationReason:    params.CancellationReason,
		refundAmount:          params.RefundAmount,
		estimatedDeliveryTime: params.EstimatedDeliveryTime,
		actualDeliveryTime:    params.ActualDeliveryTime,
		createdAt:             params.PlacedAt,
		version:               params.Version,
		persistedHistory:      len(history),
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

func validateNewOrderParams(p NewOrderParams) error {
	validationErrs := []error{
		p.ID.Validate(),
		p.CustomerID.Validate(),
		p.RestaurantID.Validate(),
		p.RestaurantLocation.Validate(),
		p.DeliveryAddress.Validate(),
	}

	if len(p.Items) == 0 {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("line items"))
	}
	for i, item := range p.Items {
		if err := item.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("line item %d: %w", i, err))
		}
	}
	if !phonePattern.MatchString(strings.TrimSpace(p.ContactPhone)) {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("contact phone", fmt.Errorf("%q is not a phone number", p.ContactPhone)))
	}
	if _, err := ParsePaymentMethod(string(p.PaymentMethod)); err != nil {
		validationErrs = append(validationErrs, err)
	}
	if p.Pricing.Total.IsNegative() {
		validationErrs = append(validationErrs,
			errs.NewValueIsOutOfRangeError("total", p.Pricing.Total, "0.00", "unbounded"))
	}
	if p.PlacedAt.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("placed at"))
	}

	return errors.Join(validationErrs...)
}

func validatePaymentInfo(p PaymentInfo) error {
	_, methodErr := ParsePaymentMethod(string(p.Method))
	_, statusErr := ParsePaymentStatus(string(p.Status))
	return errors.Join(methodErr, statusErr)
}

// validateDriverConsistency checks that driver-active statuses carry a driver and
// pre-dispatch statuses do not.
func validateDriverConsistency(status Status, driverID *kernel.UUID) error {
	hasDriver := driverID != nil
	switch {
	case status.IsDriverActive() && !hasDriver:
		return errs.NewValueIsInvalidErrorWithCause("driver", fmt.Errorf("%s order must have a driver", status))
	case !status.IsDriverActive() && status != Delivered && hasDriver:
		return errs.NewValueIsInvalidErrorWithCause("driver", fmt.Errorf("%s order must not have a driver", status))
	}
	return nil
}

// Validate checks the order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Transition moves the order to the next status on behalf of an actor.
//
// Parameters:
//   - actor: the authenticated party; its role selects the edges it may take
//   - to: the requested next status
//   - note: free text recorded in history; for Cancelled it is the cancellation
//     reason, for a driver moving Assigned back to Ready it is the decline reason
//   - now: transition time
//
// Returns:
//   - nil when the transition was accepted and recorded
//   - *errs.ConflictError when "to" is not reachable from the current status or the
//     order is already claimed
//   - *errs.ForbiddenError when the actor's role or identity may not take the edge
//
// A rejected transition leaves status, history and every other field unchanged.
// An admin moving Ready to Assigned must use Dispatch to name the driver.
//
// Example:
//
//	restaurant, _ := order.NewActor(restaurantID, order.RoleRestaurant)
//	if err := o.Transition(restaurant, order.Confirmed, "", time.Now()); err != nil {
//	    return err
//	}
func (o *Order) Transition(actor Actor, to Status, note string, now time.Time) error {
	return o.apply(actor, to, note, now, nil)
}

// Claim self-assigns a driver to a Ready order that has no driver.
func (o *Order) Claim(driver Actor, now time.Time) error {
	return o.apply(driver, Assigned, "claimed by driver", now, nil)
}

// Accept moves an order assigned to the driver to Picked.
func (o *Order) Accept(driver Actor, now time.Time) error {
	return o.apply(driver, Picked, "accepted by driver", now, nil)
}

// Decline returns an order assigned to the driver to the unassigned Ready pool.
func (o *Order) Decline(driver Actor, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		reason = "declined by driver"
	}
	return o.apply(driver, Ready, reason, now, nil)
}

// Dispatch assigns a named driver to a Ready order on behalf of an admin.
// Driver availability is checked by the caller before dispatching.
func (o *Order) Dispatch(admin Actor, driverID kernel.UUID, note string, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(note) == "" {
		note = "dispatched by admin"
	}
	return o.apply(admin, Assigned, note, now, &driverID)
}

// Cancel cancels the order on behalf of its customer.
func (o *Order) Cancel(customer Actor, reason string, now time.Time) error {
	return o.apply(customer, Cancelled, reason, now, nil)
}

func (o *Order) apply(actor Actor, to Status, note string, now time.Time, dispatchTo *kernel.UUID) error {
	if err := errors.Join(o.Validate(), actor.Validate(), to.Validate()); err != nil {
		return err
	}

	from := o.Status()
	if _, err := resolveEdge(o, from, to, actor); err != nil {
		return err
	}

	admin := actor.Role() == RoleAdmin
	if dispatchTo != nil && !admin {
		return errs.NewForbiddenError(actor.Role().String(), "dispatch another driver")
	}
	if to == Assigned && admin && dispatchTo == nil {
		return errs.NewValueIsRequiredError("dispatch driver")
	}

	now = now.UTC()
	note = strings.TrimSpace(note)

	// Compute fallible derived values before mutating anything.
	var distance float64
	if to == Delivered {
		d, err := o.restaurantLocation.DistanceKm(o.deliveryAddress.Location())
		if err != nil {
			return err
		}
		distance = d
	}

	switch to {
	case Assigned:
		driver := actor.ID()
		if dispatchTo != nil {
			driver = *dispatchTo
		}
		o.driverID = &driver
	case Ready:
		if from == Assigned {
			o.driverID = nil
		}
	case Delivered:
		o.actualDeliveryTime = &now
		o.distanceKm = &distance
		o.payment.Status = PaymentCompleted
		if o.payment.PaidAt == nil {
			o.payment.PaidAt = &now
		}
	case Cancelled:
		if note == "" {
			note = "cancelled by customer"
		}
		o.cancellationReason = note
		if o.payment.Status == PaymentCompleted {
			refund := o.pricing.Total
			o.refundAmount = &refund
			o.payment.Status = PaymentRefunded
		}
	default:
	}

	o.appendHistory(StatusRecord{
		Status:    to,
		At:        now,
		ActorID:   actor.ID(),
		ActorRole: actor.Role(),
		Note:      note,
	})

	return nil
}

// UpdatePayment records a payment outcome reported by the payment collaborator.
//
// Only completed and failed may be reported. A failed payment may later complete;
// a completed or refunded payment is final for the collaborator.
func (o *Order) UpdatePayment(status PaymentStatus, transactionRef, gateway string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if status != PaymentCompleted && status != PaymentFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%q cannot be reported by the payment collaborator", status),
		)
	}
	if o.payment.Status == PaymentCompleted || o.payment.Status == PaymentRefunded {
		return errs.NewConflictError("payment", fmt.Sprintf("is already %s", o.payment.Status))
	}
	if status == PaymentCompleted && (o.Status() == Cancelled || o.Status() == Rejected) {
		return errs.NewConflictError("order", fmt.Sprintf("is %s and cannot be paid", o.Status()))
	}

	o.payment.Status = status
	o.payment.TransactionRef = strings.TrimSpace(transactionRef)
	o.payment.Gateway = strings.TrimSpace(gateway)
	if status == PaymentCompleted {
		paidAt := now.UTC()
		o.payment.PaidAt = &paidAt
	}

	return nil
}

func (o *Order) appendHistory(record StatusRecord) {
	o.history = append(o.history, record)
	o.events = append(o.events, StatusChanged{
		OrderID:      o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		DriverID:     copyUUID(o.driverID),
		Status:       record.Status,
		At:           record.At,
	})
}

// Status is the projection of the last history entry.
func (o *Order) Status() Status {
	if len(o.history) == 0 {
		return Unknown
	}
	return o.history[len(o.history)-1].Status
}

// History returns a copy of the status history, oldest first.
func (o *Order) History() []StatusRecord {
	return append([]StatusRecord(nil), o.history...)
}

// UnsavedHistory returns the entries appended since the order was last stored.
func (o *Order) UnsavedHistory() []StatusRecord {
	return append([]StatusRecord(nil), o.history[o.persistedHistory:]...)
}

// MarkPersisted is called by repositories after a successful write with the
// version now stored.
func (o *Order) MarkPersisted(version int) {
	o.version = version
	o.persistedHistory = len(o.history)
}

// PullEvents returns and clears the events recorded since the last pull.
func (o *Order) PullEvents() []StatusChanged {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }
func (o *Order) DriverID() *kernel.UUID { return copyUUID(o.driverID) }
func (o *Order) RestaurantLocation() kernel.Location { return o.restaurantLocation }
func (o *Order) Pricing() PricingBreakdown { return o.pricing }
func (o *Order) DeliveryAddress() DeliveryAddress { return o.deliveryAddress }
func (o *Order) ContactPhone() string { return o.contactPhone }
func (o *Order) Payment() PaymentInfo { return o.payment }
func (o *Order) Promo() *AppliedPromo { return copyPromo(o.promo) }
func (o *Order) DistanceKm() *float64 { return o.distanceKm }
func (o *Order) CancellationReason() string { return o.cancellationReason }
func (o *Order) RefundAmount() *kernel.Money { return o.refundAmount }
func (o *Order) EstimatedDeliveryTime() time.Time { return o.estimatedDeliveryTime }
func (o *Order) ActualDeliveryTime() *time.Time { return o.actualDeliveryTime }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Version() int { return o.version }

// Items returns a copy of the line item snapshots.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyPromo(p *AppliedPromo) *AppliedPromo {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
