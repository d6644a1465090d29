package kernel

import (
	"errors"
)

// ErrIdentityAlreadyAssigned is returned when an aggregate identity is set a second time.
var ErrIdentityAlreadyAssigned = errors.New("aggregate identity is already assigned")

// AggregateRoot is the identity slot of an aggregate, kept apart from its business fields.
// The slot starts empty and can be assigned exactly once.
type AggregateRoot[ID comparable] struct {
	id    ID
	isSet bool
}

// NewAggregateRoot returns a slot that already holds id, for aggregates restored from storage.
func NewAggregateRoot[ID comparable](id ID) AggregateRoot[ID] {
	return AggregateRoot[ID]{id: id, isSet: true}
}

// ID returns the identity and whether it has been assigned.
func (a *AggregateRoot[ID]) ID() (ID, bool) {
	return a.id, a.isSet
}

// HasID reports whether the identity has been assigned.
func (a *AggregateRoot[ID]) HasID() bool {
	return a.isSet
}

// SetID assigns the identity.
func (a *AggregateRoot[ID]) SetID(id ID) error {
	if a.isSet {
		return ErrIdentityAlreadyAssigned
	}

	a.id = id
	a.isSet = true
	return nil
}
