package kernel

import (
	"fmt"

	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrActorIDIsNotConstructed indicates that an ActorID was not properly initialized
// through one of the constructor functions. Returned when validating a zero value.
var ErrActorIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ActorID must be created via NewActorID, ActorIDFromString, or ActorIDFromBytes")

// ActorID is a value object identifying an authenticated actor: the customer who
// placed an order or the staff member operating on it. It wraps the
// github.com/google/uuid implementation to provide domain-specific behavior and
// ensure immutability.
//
// The zero value of ActorID is invalid and must be constructed using one of the
// provided factory functions. A guest (unauthenticated) actor is represented as
// a nil *ActorID by the callers, never as a zero-value ActorID.
//
// ActorID is immutable and safe for concurrent use.
type ActorID struct {
	id uuid.UUID
}

// NewActorID generates a new random actor identifier (UUID version 4).
func NewActorID() ActorID {
	return ActorID{id: uuid.New()}
}

// ActorIDFromString parses an ActorID from its string representation.
// It accepts the standard UUID formats and is typically used when resolving
// actors from session tokens or request headers.
func ActorIDFromString(s string) (ActorID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ActorID{}, fmt.Errorf("invalid actor ID format: %w", err)
	}
	return ActorID{id: id}, nil
}

// ActorIDFromBytes creates an ActorID from a 16-byte slice. Used when actor
// identifiers are stored as binary data in databases.
func ActorIDFromBytes(b []byte) (ActorID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return ActorID{}, fmt.Errorf("invalid actor ID format: %w", err)
	}
	actorID := ActorID{id: id}
	if err = actorID.Validate(); err != nil {
		return ActorID{}, err
	}
	return actorID, nil
}

// String returns the standard textual UUID representation.
func (a ActorID) String() string {
	return a.id.String()
}

// Bytes returns the underlying UUID value for persistence and external integration.
func (a ActorID) Bytes() uuid.UUID {
	return a.id
}

// IsEqual compares two actor identifiers for equality.
func (a ActorID) IsEqual(other ActorID) bool {
	return a.id == other.id
}

// Validate checks that the ActorID was properly constructed.
// Returns ErrActorIDIsNotConstructed for the zero value.
func (a ActorID) Validate() error {
	if a.id == uuid.Nil {
		return ErrActorIDIsNotConstructed
	}
	return nil
}
