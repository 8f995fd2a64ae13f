// Package domain contains the recipe entity and its business errors.
// Domain errors describe what went wrong, never how it is transported;
// adapters map them to HTTP statuses.
package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinels matched with errors.Is. The typed errors below unwrap to them.
var (
	// ErrNotFound indicates the targeted recipe (or set of recipes) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates client input was rejected before reaching the store.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the document store could not be reached.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the lookup that matched nothing.
type NotFoundError struct {
	Entity string
	Key    string
	Value  string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s with %s %q not found", e.Entity, e.Key, e.Value)
	}

	return e.Entity + " not found"
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error for a lookup by key.
// An empty key means the whole (possibly filtered) collection was empty.
func NewNotFoundError(entity, key, value string) error {
	return &NotFoundError{Entity: entity, Key: key, Value: value}
}

// ValidationError collects field-level problems with client input.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))

	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Add records a problem with field. The first message for a field wins.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}

	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// OrNil returns e as an error when it holds at least one problem.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}

	return e
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// UnavailableError reports a dependency, in practice the document store,
// that could not be reached.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	msg := e.Service + " unavailable"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// Unwrap returns ErrUnavailable.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError reports service as unreachable for reason.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable reports whether err wraps ErrUnavailable.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
