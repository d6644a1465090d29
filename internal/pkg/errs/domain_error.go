package errs

import (
	"errors"
	"fmt"
)

// ErrDomainValidation is the sentinel wrapped by every DomainError, so callers can
// detect a rejected business operation with errors.Is.
var ErrDomainValidation = errors.New("domain validation failed")

// Kind classifies a DomainError by the condition that triggered it.
type Kind int

const (
	KindUnknown Kind = iota
	KindOrderNotInitialState
	KindPriceNotPositive
	KindTotalPriceMismatch
	KindItemPriceInvalid
	KindInvalidStateTransition
	KindRestaurantNotActive
)

// messageTemplates maps each kind to the user-facing format string. Downstream
// systems may parse these messages, so the wording is part of the contract.
var messageTemplates = map[Kind]string{
	KindUnknown:                "Order domain rule violated!",
	KindOrderNotInitialState:   "Order is not in correct state for initialization!",
	KindPriceNotPositive:       "Total price must be greater than zero!",
	KindTotalPriceMismatch:     "Total price: %s is not equal to Order items total: %s!",
	KindItemPriceInvalid:       "Order item price: %s is not valid for product %s",
	KindInvalidStateTransition: "Order is not in correct state for %s operation!",
	KindRestaurantNotActive:    "Restaurant with id %s is currently not active!",
}

// DomainError is the single error type raised by the order domain core.
type DomainError struct {
	Kind    Kind
	Message string
}

// NewDomainError renders the template registered for kind with args.
func NewDomainError(kind Kind, args ...any) *DomainError {
	template, ok := messageTemplates[kind]
	if !ok {
		kind = KindUnknown
		template = messageTemplates[KindUnknown]
	}

	message := template
	if len(args) > 0 {
		message = fmt.Sprintf(template, args...)
	}

	return &DomainError{
		Kind:    kind,
		Message: message,
	}
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return ErrDomainValidation
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind Kind) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Kind == kind
}
