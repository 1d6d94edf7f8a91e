package addressbook

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches any *NotFoundError via errors.Is
	ErrNotFound = errors.New("not found")
)

// ValidationError is returned when raw input violates a field rule.
// The record it was aimed at is left unmodified.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is implements errors.Is for ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when a phone to remove or edit is not on the record
type NotFoundError struct {
	Field string
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Field, e.Value)
}

// Is implements errors.Is for ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
