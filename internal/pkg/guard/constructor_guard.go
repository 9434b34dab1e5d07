// Package guard provides a defensive construction marker for value objects,
// entities, and commands. Embedding a ConstructorGuard in a struct makes the
// zero value detectable, so objects that bypassed their constructor fail
// validation instead of slipping through with unchecked state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the embedding struct was created through its
// designated constructor. The zero value is invalid by design.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state. Constructors
// assign it to the struct they build; zero-value structs keep the invalid guard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// Otherwise it returns notConstructed, or ErrDefaultConstructorGuard when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
