// Package guard provides the ConstructorGuard used by value objects, entities and
// commands that must only be built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guarded value is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a
// private field, set it with NewConstructorGuard in the constructor and call
// Validate from the owner's Validate method:
//
//	type Destination struct {
//	    location kernel.Location
//	    guard    guard.ConstructorGuard
//	}
//
//	func (d Destination) Validate() error {
//	    return d.guard.Validate(ErrDestinationIsNotConstructed)
//	}
//
// A zero-value ConstructorGuard always fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
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
