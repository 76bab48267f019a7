package kernel

import (
	"errors"
	"fmt"

	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

// Role is the capability level the identity provider assigns to a caller.
type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// ErrActorIsNotConstructed is returned when a zero-value Actor is used.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor constructor")

// ParseRole maps the textual role carried by an identity token to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleStaff, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated identity an operation runs on behalf of. The
// core trusts it as supplied; it only checks the role against the operation.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, role Role) (Actor, error) {
	a := Actor{guard: guard.NewConstructorGuard()}

	if err := errors.Join(a.setID(id), a.setRole(role)); err != nil {
		return Actor{}, err
	}
	return a, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// IsStaff reports whether the actor may work the order queue. Administrators
// hold every staff capability.
func (a Actor) IsStaff() bool {
	return a.role == RoleStaff || a.role == RoleAdmin
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// RequireStaff returns a Forbidden error naming action unless the actor is
// staff or admin.
func (a Actor) RequireStaff(action string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsStaff() {
		return errs.NewForbiddenErrorWithCause(action, fmt.Errorf("role %s is not allowed", a.role))
	}
	return nil
}

func (a *Actor) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
