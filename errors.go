package cfgval

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrReadOnly indicates an attempt to set a read-only config value.
	ErrReadOnly = errors.New("read-only config value")

	// ErrParse indicates text that could not be parsed into a value's
	// canonical representation.
	ErrParse = errors.New("config value parse failure")

	// ErrOverridesNotFound indicates the overrides file does not exist.
	ErrOverridesNotFound = errors.New("overrides file not found")
)

// ReadOnlyError is returned when Set is called on a read-only config value.
// It identifies the offending parameter by its declared key.
type ReadOnlyError struct {
	Key string
}

// Error implements the error interface.
func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("read-only config value, set is not supported: %s", e.Key)
}

// Unwrap allows errors.Is(err, ErrReadOnly) matching.
func (e *ReadOnlyError) Unwrap() error {
	return ErrReadOnly
}

// ParseError is returned when override or mutation text cannot be parsed
// into the destination storage kind's canonical representation.
type ParseError struct {
	// Key is the declared parameter name.
	Key string

	// Input is the text that failed to parse.
	Input string

	// Kind is the destination storage kind.
	Kind Kind

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s for config value %s: %v", e.Input, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s for config value %s", e.Input, e.Kind, e.Key)
}

// Unwrap returns the underlying parse error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error kind.
// Allows errors.Is(err, ErrParse) without losing the wrapped cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
