// Package errors provides sentinel errors and structured error types for the
// pyforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates the scaffold request was rejected before any
	// filesystem change: unknown template kind, bad project name, or a
	// pre-existing project root.
	ErrValidation = errors.New("validation error")

	// ErrDefect indicates an inconsistency inside the built-in template
	// catalog, such as a placeholder with no context value or two entries
	// rendering to the same destination path.
	ErrDefect = errors.New("template defect")

	// ErrExternalTool indicates an external command (git, python) could not
	// be spawned or failed. Scaffolding treats these as warnings, not
	// aborts; the sentinel exists for callers that need to distinguish.
	ErrExternalTool = errors.New("external tool error")
)

// DetailError captures structured error information for user-facing failures.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the filesystem path involved (optional).
	Location string

	// Field is the request field that failed validation (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a request validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewDefectError creates a template catalog defect error with details.
func NewDefectError(message string, context map[string]string) error {
	return &DetailError{
		Type:    "template defect",
		Message: message,
		Context: context,
		Hint:    "This is a bug in the built-in template catalog; please report it.",
		Cause:   ErrDefect,
	}
}

// NewWriteError creates a filesystem write failure error with details.
func NewWriteError(message, location string, cause error) error {
	return &DetailError{
		Type:     "write failed",
		Message:  message,
		Location: location,
		Hint:     "Check permissions and free space on the target filesystem.",
		Cause:    cause,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
