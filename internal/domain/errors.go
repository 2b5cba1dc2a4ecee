package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is. Each guard failure
// carries a typed error below that unwraps to one of these.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("not permitted")
	ErrInvalidState    = errors.New("invalid state")
	ErrPolicyViolation = errors.New("policy violation")
	ErrConflict        = errors.New("conflict")
)

// ValidationError reports the first failing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AuthorizationError means the actor is authenticated but not permitted
// to act on this particular record.
type AuthorizationError struct {
	Reason string
}

func NewAuthorizationError(reason string) *AuthorizationError {
	return &AuthorizationError{Reason: reason}
}

func (e *AuthorizationError) Error() string { return e.Reason }

func (e *AuthorizationError) Unwrap() error { return ErrUnauthorized }

// InvalidStateError reports a guard failure on status or returnStatus,
// naming the state the record is actually in.
type InvalidStateError struct {
	Current string
	Reason  string
}

func NewInvalidStateError(current, reason string) *InvalidStateError {
	return &InvalidStateError{Current: current, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s (current state: %s)", e.Reason, e.Current)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// PolicyViolationError means the return window has been exceeded.
type PolicyViolationError struct {
	DaysSinceDelivery int
	AllowedDays       int
}

func NewPolicyViolationError(daysSince, allowed int) *PolicyViolationError {
	return &PolicyViolationError{DaysSinceDelivery: daysSince, AllowedDays: allowed}
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("return window exceeded: %d days since delivery, allowed %d", e.DaysSinceDelivery, e.AllowedDays)
}

func (e *PolicyViolationError) Unwrap() error { return ErrPolicyViolation }

// ConflictError means a concurrent writer won the race on this record.
// The caller may retry against the refreshed state.
type ConflictError struct {
	Resource string
	ID       string
}

func NewConflictError(resource, id string) *ConflictError {
	return &ConflictError{Resource: resource, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified concurrently: %s", e.Resource, e.ID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
