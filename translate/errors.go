package translate

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrSkip signals that a value should be omitted from the result entirely.
// Collaborators return it (or wrap it) and translators pass it through
// unchanged, on direct and redirected paths alike.
var ErrSkip = errors.New("translate: skip value")

// ErrFrozen is returned by RegisterSubtype after Freeze.
var ErrFrozen = errors.New("translate: hierarchy is frozen")

// UnregisteredDiscriminatorError means a document carries a discriminator
// for which no subtype translator was registered. The document cannot be
// interpreted.
type UnregisteredDiscriminatorError struct {
	Discriminator string
	Path          Path
}

func (e *UnregisteredDiscriminatorError) Error() string {
	return fmt.Sprintf("translate: document at %s has discriminator %q but no subtype is registered for it",
		e.Path, e.Discriminator)
}

// UnregisteredTypeError means an instance's runtime type was never
// registered in the hierarchy being saved through.
type UnregisteredTypeError struct {
	Type reflect.Type
	Path Path
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("translate: type %s at %s is not a registered subtype", e.Type, e.Path)
}

// DuplicateError means a discriminator, alias, or type was registered
// twice with conflicting translators. Registration is a configuration
// step, so this is a hard error rather than last-write-wins.
type DuplicateError struct {
	Key string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("translate: %s is already registered with a different translator", e.Key)
}
