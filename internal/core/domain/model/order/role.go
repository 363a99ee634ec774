package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Role identifies which party drives a transition.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDriver     Role = "driver"
	RoleAdmin      Role = "admin"
)

// ParseRole validates a role received from the authentication gateway.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks the role is one of the four known parties.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDriver, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor constructor")

// Actor is an authenticated party acting on an order. For the restaurant role
// the ID is the restaurant's ID; for the other roles it is the user's ID.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor after validating its identifier and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// ID returns the actor identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor role.
func (a Actor) Role() Role {
	return a.role
}

// Validate checks the Actor was built by NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Is reports whether the actor has the given role and identifier.
func (a Actor) Is(role Role, id kernel.UUID) bool {
	return a.role == role && a.id.IsEqual(id)
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.role, a.id.String())
}
