package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// Lookup error kinds. Adapters report one of the provider kinds through a
// ProviderError; the lookup service ends every failed resolution with one of
// the terminal kinds through a ResolveError.
var (
	// ErrIneligible means the query shape is not accepted by a provider.
	ErrIneligible = errors.New("query not eligible for provider")
	// ErrUnavailable covers network failures and unexpected provider statuses.
	ErrUnavailable = errors.New("provider unavailable")
	// ErrTimeout means the provider did not answer within its deadline.
	ErrTimeout = errors.New("provider timeout")
	// ErrUnconfigured means a provider lacks a required credential.
	ErrUnconfigured = errors.New("provider not configured")
	// ErrMalformedResponse means a payload arrived but yielded no senses.
	ErrMalformedResponse = errors.New("malformed provider response")

	ErrConfiguration = errors.New("lookup configuration error")
	ErrLookupFailed  = errors.New("lookup failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ProviderError is a failure reported by a single provider adapter.
// Kind is one of the provider kinds above; Err is the underlying cause, if any.
type ProviderError struct {
	Source Source
	Kind   error
	Err    error
}

// NewProviderError creates a ProviderError.
func NewProviderError(src Source, kind, cause error) *ProviderError {
	return &ProviderError{Source: src, Kind: kind, Err: cause}
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s provider: %v: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s provider: %v", e.Source, e.Kind)
}

func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ResolveError is the terminal failure of a lookup. Kind is ErrConfiguration
// or ErrLookupFailed; Attempts holds the provider failures in the order they
// happened.
type ResolveError struct {
	Kind     error
	Query    string
	Attempts []error
}

func (e *ResolveError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("resolve %q: %v", e.Query, e.Kind)
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.Error()
	}
	return fmt.Sprintf("resolve %q: %v (%s)", e.Query, e.Kind, strings.Join(parts, "; "))
}

func (e *ResolveError) Unwrap() []error {
	return append([]error{e.Kind}, e.Attempts...)
}

// AllMisses reports whether every attempt failed because the provider had no
// answer, as opposed to being unreachable.
func (e *ResolveError) AllMisses() bool {
	if len(e.Attempts) == 0 {
		return false
	}
	for _, a := range e.Attempts {
		if !errors.Is(a, ErrNotFound) && !errors.Is(a, ErrMalformedResponse) && !errors.Is(a, ErrIneligible) {
			return false
		}
	}
	return true
}
