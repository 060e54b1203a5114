// Package guard provides a defensive pattern that ensures value objects,
// commands, and queries are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes the zero value
// detectable, so handlers can reject objects that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value fails validation, which is the whole point:
// a struct literal that skipped the constructor is distinguishable from a
// properly built one.
//
// Example usage:
//
//	type CheckoutCommand struct {
//	    sessionID string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewCheckoutCommand(sessionID string) (CheckoutCommand, error) {
//	    if sessionID == "" {
//	        return CheckoutCommand{}, errs.NewValueIsRequiredError("sessionID")
//	    }
//	    return CheckoutCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CheckoutCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the embedding object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor, the
// supplied validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard so validation never silently passes.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
