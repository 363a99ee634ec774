package promo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPromoCodeIsNotConstructed is returned when a PromoCode was not created via NewPromoCode.
	ErrPromoCodeIsNotConstructed = errors.New("PromoCode must be created via NewPromoCode constructor")

	codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)
)

// DiscountType selects how Value is applied.
type DiscountType string

const (
	Percentage DiscountType = "percentage"
	Fixed      DiscountType = "fixed"
)

// Applicability restricts who or where a code may be used.
type Applicability string

const (
	ApplicableAll                 Applicability = "all"
	ApplicableNewUsers            Applicability = "new_users"
	ApplicableSpecificRestaurants Applicability = "specific_restaurants"
)

// UsageLimit caps redemptions. Zero means unlimited.
type UsageLimit struct {
	Total   int
	PerUser int
}

// Redeemer is what the validator needs to know about the user applying a code.
type Redeemer struct {
	UserID kernel.UUID
	// Uses is how many times this user already redeemed the code.
	Uses int
	// IsNewUser is true when the user has never completed an order.
	IsNewUser bool
}

// Params carries the admin-supplied definition of a promo code.
type Params struct {
	ID            kernel.UUID
	Code          string
	Description   string
	Type          DiscountType
	Value         decimal.Decimal
	MaxDiscount   *kernel.Money
	MinOrderValue kernel.Money
	ValidFrom     time.Time
	ValidUntil    time.Time
	UsageLimit    UsageLimit
	ApplicableFor Applicability
	Restaurants   []kernel.UUID
	CreatedBy     kernel.UUID
	CreatedAt     time.Time
}

// PromoCode is a reusable discount definition.
//
// Invariants:
//   - the code is uppercase and matches ^[A-Z0-9_-]{3,32}$
//   - ValidUntil is after ValidFrom
//   - usage counters are changed only by the storage's atomic increment, never here
type PromoCode struct {
	id            kernel.UUID
	code          string
	description   string
	discountType  DiscountType
	value         decimal.Decimal
	maxDiscount   *kernel.Money
	minOrderValue kernel.Money
	validFrom     time.Time
	validUntil    time.Time
	usageLimit    UsageLimit
	usageCount    int
	applicableFor Applicability
	restaurants   []kernel.UUID
	active        bool
	createdBy     kernel.UUID
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

// NormalizeCode uppercases and trims a user-entered code and checks its format.
// A malformed code is a validation error.
func NormalizeCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !codePattern.MatchString(normalized) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"promo code",
			fmt.Errorf("%q must be 3-32 characters of A-Z, 0-9, '_' or '-'", code),
		)
	}
	return normalized, nil
}

// NewPromoCode creates an active promo code with zero usage.
//
// Returns:
//   - *PromoCode: the code
//   - error: joined validation errors for a malformed code, a non-positive value,
//     a percentage over 100, an empty or inverted validity window, negative limits,
//     or a restaurant restriction without restaurants
func NewPromoCode(p Params) (*PromoCode, error) {
	code, codeErr := NormalizeCode(p.Code)

	validationErrs := []error{codeErr, p.ID.Validate(), p.CreatedBy.Validate()}

	switch p.Type {
	case Percentage:
		if p.Value.GreaterThan(decimal.NewFromInt(100)) {
			validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("value", p.Value, 0, 100))
		}
	case Fixed:
	default:
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("discount type", fmt.Errorf("%q is not supported", p.Type)))
	}
	if !p.Value.IsPositive() {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("value", errors.New("must be positive")))
	}
	if p.MaxDiscount != nil && !p.MaxDiscount.IsPositive() {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("max discount", errors.New("must be positive when set")))
	}
	if p.MinOrderValue.IsNegative() {
		validationErrs = append(validationErrs,
			errs.NewValueIsOutOfRangeError("min order value", p.MinOrderValue, "0.00", "unbounded"))
	}
	if p.ValidFrom.IsZero() || p.ValidUntil.IsZero() || !p.ValidUntil.After(p.ValidFrom) {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("validity window", errors.New("valid until must be after valid from")))
	}
	if p.UsageLimit.Total < 0 || p.UsageLimit.PerUser < 0 {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("usage limit", errors.New("limits must not be negative")))
	}

	applicable := p.ApplicableFor
	if applicable == "" {
		applicable = ApplicableAll
	}
	switch applicable {
	case ApplicableAll, ApplicableNewUsers:
	case ApplicableSpecificRestaurants:
		if len(p.Restaurants) == 0 {
			validationErrs = append(validationErrs, errs.NewValueIsRequiredError("applicable restaurants"))
		}
	default:
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("applicable for", fmt.Errorf("%q is not supported", applicable)))
	}
	for _, r := range p.Restaurants {
		validationErrs = append(validationErrs, r.Validate())
	}

	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return &PromoCode{
		id:            p.ID,
		code:          code,
		description:   strings.TrimSpace(p.Description),
		discountType:  p.Type,
		value:         p.Value,
		maxDiscount:   p.MaxDiscount,
		minOrderValue: p.MinOrderValue,
		validFrom:     p.ValidFrom.UTC(),
		validUntil:    p.ValidUntil.UTC(),
		usageLimit:    p.UsageLimit,
		applicableFor: applicable,
		restaurants:   append([]kernel.UUID(nil), p.Restaurants...),
		active:        true,
		createdBy:     p.CreatedBy,
		createdAt:     p.CreatedAt.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestorePromoCode rebuilds a promo code from storage.
func RestorePromoCode(p Params, usageCount int, active bool) (*PromoCode, error) {
	pc, err := NewPromoCode(p)
	if err != nil {
		return nil, err
	}
	if usageCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("usage count", usageCount, 0, "unbounded")
	}

	pc.usageCount = usageCount
	pc.active = active
	return pc, nil
}

// Validate checks the promo code was built by NewPromoCode.
func (p *PromoCode) Validate() error {
	return p.guard.Validate(ErrPromoCodeIsNotConstructed)
}

// IsValidFor checks whether the code may be applied. Checks run in a fixed order
// and the first failing one is returned as a *RejectionError:
//
//	active → validity window → min order value → total usage → per-user usage →
//	restaurant allow-list → new users only
//
// Returns:
//   - nil when the code applies
//   - *RejectionError carrying a user-facing reason otherwise
func (p *PromoCode) IsValidFor(redeemer Redeemer, orderValue kernel.Money, restaurantID kernel.UUID, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	switch {
	case !p.active:
		return newRejection(ReasonInactive)
	case now.Before(p.validFrom) || now.After(p.validUntil):
		return newRejection(ReasonExpired)
	case orderValue.LessThan(p.minOrderValue):
		return newRejection(fmt.Sprintf(ReasonMinOrderValue, p.minOrderValue))
	case p.usageLimit.Total > 0 && p.usageCount >= p.usageLimit.Total:
		return newRejection(ReasonUsageLimit)
	case p.usageLimit.PerUser > 0 && redeemer.Uses >= p.usageLimit.PerUser:
		return newRejection(ReasonPerUserLimit)
	case p.applicableFor == ApplicableSpecificRestaurants && !p.appliesTo(restaurantID):
		return newRejection(ReasonRestaurant)
	case p.applicableFor == ApplicableNewUsers && !redeemer.IsNewUser:
		return newRejection(ReasonNewUsersOnly)
	}

	return nil
}

// CalculateDiscount returns the discount for an order value. Percentage discounts
// are capped at MaxDiscount when set; fixed discounts never exceed the order value.
// The result is never negative and never above orderValue.
//
// Example:
//
//	// percentage 20, max discount 200
//	discount := promo.CalculateDiscount(kernel.MoneyFromFloat(1200)) // 200.00, not 240.00
func (p *PromoCode) CalculateDiscount(orderValue kernel.Money) kernel.Money {
	if !orderValue.IsPositive() {
		return kernel.ZeroMoney()
	}

	var discount kernel.Money
	switch p.discountType {
	case Percentage:
		discount = orderValue.Percent(p.value)
		if p.maxDiscount != nil {
			discount = discount.Min(*p.maxDiscount)
		}
	case Fixed:
		discount = kernel.NewMoney(p.value)
	}

	discount = discount.Min(orderValue)
	if discount.IsNegative() {
		return kernel.ZeroMoney()
	}
	return discount
}

// SetActive toggles the code on or off.
func (p *PromoCode) SetActive(active bool) {
	p.active = active
}

func (p *PromoCode) appliesTo(restaurantID kernel.UUID) bool {
	for _, r := range p.restaurants {
		if r.IsEqual(restaurantID) {
			return true
		}
	}
	return false
}

func (p *PromoCode) ID() kernel.UUID { return p.id }
func (p *PromoCode) Code() string { return p.code }
func (p *PromoCode) Description() string { return p.description }
func (p *PromoCode) Type() DiscountType { return p.discountType }
func (p *PromoCode) Value() decimal.Decimal { return p.value }
func (p *PromoCode) MaxDiscount() *kernel.Money { return p.maxDiscount }
func (p *PromoCode) MinOrderValue() kernel.Money { return p.minOrderValue }
func (p *PromoCode) ValidFrom() time.Time { return p.validFrom }
func (p *PromoCode) ValidUntil() time.Time { return p.validUntil }
func (p *PromoCode) UsageLimit() UsageLimit { return p.usageLimit }
func (p *PromoCode) UsageCount() int { return p.usageCount }
func (p *PromoCode) ApplicableFor() Applicability { return p.applicableFor }
func (p *PromoCode) IsActive() bool { return p.active }
func (p *PromoCode) CreatedBy() kernel.UUID { return p.createdBy }
func (p *PromoCode) CreatedAt() time.Time { return p.createdAt }
func (p *PromoCode) Restaurants() []kernel.UUID { return append([]kernel.UUID(nil), p.restaurants...) }
