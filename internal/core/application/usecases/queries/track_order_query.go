// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read straight from the database.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks an order up by the tracking id handed to the customer.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//	status, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	trackingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(trackingID kernel.UUID) (TrackOrderQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q TrackOrderQuery) TrackingID() kernel.UUID {
	return q.trackingID
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackOrderQueryResponse is what a customer sees about an order. FailureMessages is nil
// when none were ever recorded.
type TrackOrderQueryResponse struct {
	TrackingID      kernel.UUID
	Status          string
	FailureMessages []string
}
