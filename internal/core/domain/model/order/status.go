package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──pay──> Paid ──approve──> Approved
//	   │               │
//	   │           initCancel
//	   │               v
//	   │           Cancelling
//	   │               │
//	   └───cancel──> Cancelled <──cancel
//
// Approved and Cancelled are final. Unknown is the zero value and marks an order that
// has not been initialized yet.
type Status int

const (
	// Unknown is the status of an order before initialization.
	Unknown Status = iota
	Pending
	Paid
	Approved
	Cancelling
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Paid:       "PAID",
		Approved:   "APPROVED",
		Cancelling: "CANCELLING",
		Cancelled:  "CANCELLED",
	}
}

// ParseStatus converts the persisted name back to a Status. The empty string maps to
// Unknown so that uninitialized orders round-trip.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return Unknown, nil
	}
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate accepts Unknown and every defined status.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Approved || s == Cancelled
}

// Pay transitions Pending to Paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return s, invalidTransition("pay")
	}
	return Paid, nil
}

// Approve transitions Paid to Approved.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return s, invalidTransition("approve")
	}
	return Approved, nil
}

// InitCancel transitions Paid to Cancelling, the compensation path after payment.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return s, invalidTransition("initCancel")
	}
	return Cancelling, nil
}

// Cancel transitions Cancelling or Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Cancelling && s != Pending {
		return s, invalidTransition("cancel")
	}
	return Cancelled, nil
}

func invalidTransition(operation string) error {
	return errs.NewDomainError(errs.KindInvalidStateTransition, operation)
}
