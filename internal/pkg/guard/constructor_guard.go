// Package guard lets value objects, entities, commands and queries detect
// whether they were built through their constructor or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object is a
// zero value and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded by types that must only be created through their
// constructor. The zero value reports "not constructed".
//
// Example:
//
//	type CreateOrderItemCommand struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c CreateOrderItemCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
