package errs

import (
	"errors"
	"fmt"
)

var (
	ErrResourceIsExhausted   = errors.New("resource is exhausted")
	ErrResourceIsUnavailable = errors.New("resource is unavailable")
	ErrPreconditionIsNotMet  = errors.New("precondition is not met")
	ErrInvariantIsViolated   = errors.New("invariant is violated")
)

// ResourceIsExhaustedError reports that a bounded resource has no room left,
// e.g. the order queue is at capacity.
type ResourceIsExhaustedError struct {
	Resource string
	Capacity int
}

func NewResourceIsExhaustedError(resource string, capacity int) *ResourceIsExhaustedError {
	return &ResourceIsExhaustedError{
		Resource: resource,
		Capacity: capacity,
	}
}

func (e *ResourceIsExhaustedError) Error() string {
	return fmt.Sprintf("%s: %s is full (capacity %d)", ErrResourceIsExhausted, e.Resource, e.Capacity)
}

func (e *ResourceIsExhaustedError) Unwrap() error {
	return ErrResourceIsExhausted
}

// ResourceIsUnavailableError reports that a resource could not be handed out
// even though the caller was allowed to take one. Any partially taken
// resources have already been returned when this error is produced.
type ResourceIsUnavailableError struct {
	Resource string
	Cause    error
}

func NewResourceIsUnavailableError(resource string) *ResourceIsUnavailableError {
	return &ResourceIsUnavailableError{
		Resource: resource,
	}
}

func NewResourceIsUnavailableErrorWithCause(resource string, cause error) *ResourceIsUnavailableError {
	return &ResourceIsUnavailableError{
		Resource: resource,
		Cause:    cause,
	}
}

func (e *ResourceIsUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrResourceIsUnavailable, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrResourceIsUnavailable, e.Resource)
}

func (e *ResourceIsUnavailableError) Unwrap() error {
	return ErrResourceIsUnavailable
}

// PreconditionIsNotMetError reports an operation attempted on an object whose
// current state does not allow it.
type PreconditionIsNotMetError struct {
	Subject string
	Cause   error
}

func NewPreconditionIsNotMetError(subject string) *PreconditionIsNotMetError {
	return &PreconditionIsNotMetError{
		Subject: subject,
	}
}

func NewPreconditionIsNotMetErrorWithCause(subject string, cause error) *PreconditionIsNotMetError {
	return &PreconditionIsNotMetError{
		Subject: subject,
		Cause:   cause,
	}
}

func (e *PreconditionIsNotMetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPreconditionIsNotMet, e.Subject, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPreconditionIsNotMet, e.Subject)
}

func (e *PreconditionIsNotMetError) Unwrap() error {
	return ErrPreconditionIsNotMet
}

// InvariantIsViolatedError reports a broken internal accounting rule. It is a
// programming error and is never expected in a correct run.
type InvariantIsViolatedError struct {
	Invariant string
	Cause     error
}

func NewInvariantIsViolatedError(invariant string) *InvariantIsViolatedError {
	return &InvariantIsViolatedError{
		Invariant: invariant,
	}
}

func NewInvariantIsViolatedErrorWithCause(invariant string, cause error) *InvariantIsViolatedError {
	return &InvariantIsViolatedError{
		Invariant: invariant,
		Cause:     cause,
	}
}

func (e *InvariantIsViolatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInvariantIsViolated, e.Invariant, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvariantIsViolated, e.Invariant)
}

func (e *InvariantIsViolatedError) Unwrap() error {
	return ErrInvariantIsViolated
}
