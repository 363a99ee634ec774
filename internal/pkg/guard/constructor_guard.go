// Package guard provides ConstructorGuard, a marker embedded into value objects,
// entities and commands to tell an instance built by its constructor apart from
// a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object was created through its
// designated constructor. The zero value reports "not constructed".
//
// Example:
//
//	var ErrPromoCodeIsNotConstructed = errors.New("PromoCode must be created via NewPromoCode")
//
//	type PromoCode struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (p *PromoCode) Validate() error {
//	    return p.guard.Validate(ErrPromoCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from constructors only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
