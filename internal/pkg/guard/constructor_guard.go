// Package guard provides ConstructorGuard, a marker that lets domain types detect
// whether a value was produced by its constructor or is a bare zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field in value objects, entities, commands and
// queries. Only the designated constructor sets it, so a zero value fails Validate.
//
// Example:
//
//	var ErrStreetAddressIsNotConstructed = errors.New("StreetAddress must be created via NewStreetAddress")
//
//	type StreetAddress struct {
//	    street string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (a StreetAddress) Validate() error {
//	    return a.guard.Validate(ErrStreetAddressIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil) if the
// guarded value was not built through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
