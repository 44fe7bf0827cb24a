// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Type identifies the category of error
type Type string

const (
	// TypeNotANumber indicates a blank or unparseable numeric input
	TypeNotANumber Type = "NOT_A_NUMBER"

	// TypeOutOfBounds indicates a value outside the calculator's declared domain
	TypeOutOfBounds Type = "OUT_OF_BOUNDS"

	// TypeInvalidRange indicates current >= target
	TypeInvalidRange Type = "INVALID_RANGE"

	// TypeUnknownKey indicates a named tier or type that is not in its table
	TypeUnknownKey Type = "UNKNOWN_KEY"

	// TypeParsing indicates a table definition parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeStorage indicates a persistence error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf returns the type of a domain error, or TypeInternal for anything else
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// NotANumber creates an error for a blank or unparseable numeric field
func NotANumber(field, raw string) *Error {
	if strings.TrimSpace(raw) == "" {
		return Newf(TypeNotANumber, "%s: please enter a valid number", field).
			WithContext("field", field)
	}
	return Newf(TypeNotANumber, "%s: %q is not a valid number", field, raw).
		WithContext("field", field).
		WithContext("value", raw)
}

// OutOfBounds creates an error for a value outside [lower, upper]
func OutOfBounds(field string, value, lower, upper interface{}) *Error {
	return Newf(TypeOutOfBounds, "%s must be between %v and %v, got %v", field, lower, upper, value).
		WithContext("field", field).
		WithContext("lower", lower).
		WithContext("upper", upper)
}

// InvalidRange creates an error for current >= target
func InvalidRange(current, target interface{}) *Error {
	return Newf(TypeInvalidRange, "target (%v) must be greater than current (%v)", target, current).
		WithContext("current", current).
		WithContext("target", target)
}

// UnknownKey creates an error for a name missing from its table
func UnknownKey(kind, name string, suggestions []string) *Error {
	msg := fmt.Sprintf("unknown %s: %q", kind, name)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(suggestions), ", "))
	}
	e := New(TypeUnknownKey, msg).WithContext("kind", kind).WithContext("name", name)
	if len(suggestions) > 0 {
		e.WithContext("suggestions", suggestions)
	}
	return e
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Storage creates a storage error
func Storage(message string, cause error) *Error {
	return Wrap(TypeStorage, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
