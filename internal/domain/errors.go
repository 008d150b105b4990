package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or input record fails validation.
	// It is usually wrapped by a *ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrOutOfRange is returned when a numeric argument lies outside its allowed range.
	// It is usually wrapped by a *RangeError.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a single invalid field. Index is the position of
// the offending record inside an input list, or -1 when the error does not
// refer to a list element.
type ValidationError struct {
	Index   int
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError that does not refer to a list element.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Index: -1, Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("record %d: %s %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// RangeError reports a numeric argument outside [Min, Max].
// A Max of nil means the range has no upper bound.
type RangeError struct {
	Name  string
	Value float64
	Min   float64
	Max   *float64
}

// NewRangeError creates a RangeError with an inclusive upper bound.
func NewRangeError(name string, value, min, max float64) *RangeError {
	return &RangeError{Name: name, Value: value, Min: min, Max: &max}
}

// NewMinRangeError creates a RangeError that only has a lower bound.
func NewMinRangeError(name string, value, min float64) *RangeError {
	return &RangeError{Name: name, Value: value, Min: min}
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Max != nil {
		return fmt.Sprintf("%s must be between %g and %g, got %g", e.Name, e.Min, *e.Max, e.Value)
	}
	return fmt.Sprintf("%s must be at least %g, got %g", e.Name, e.Min, e.Value)
}

// Unwrap returns ErrOutOfRange so callers can match with errors.Is.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
