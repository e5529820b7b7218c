//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrDefect)
	assert.NotEqual(t, ErrValidation, ErrExternalTool)
	assert.NotEqual(t, ErrDefect, ErrExternalTool)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "unknown template kind: rails",
		Location: "/home/dev/projects/acme",
		Field:    "kinds",
		Context:  map[string]string{"Known": "cli, flask, library"},
		Hint:     "Run 'pyforge templates' to see available kinds.",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /home/dev/projects/acme")
	assert.Contains(t, output, "Field: kinds")
	assert.Contains(t, output, "Known: cli, flask, library")
	assert.Contains(t, output, "unknown template kind: rails")
	assert.Contains(t, output, "Hint: Run 'pyforge templates' to see available kinds.")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"project root already exists",
		"/tmp/acme",
		"name",
		"Choose a different name or parent directory.",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "project root already exists", detail.Message)
	assert.Equal(t, "/tmp/acme", detail.Location)
	assert.Equal(t, "name", detail.Field)
	assert.Equal(t, "Choose a different name or parent directory.", detail.Hint)
}

func TestNewDefectError(t *testing.T) {
	err := NewDefectError("unresolved placeholder {unknown}", map[string]string{"Kind": "flask"})

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrDefect))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "template defect", detail.Type)
	assert.Contains(t, detail.Error(), "Kind: flask")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrExternalTool, "git init failed")

	assert.True(t, errors.Is(wrapped, ErrExternalTool))
	assert.Contains(t, wrapped.Error(), "git init failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "explicit exit error",
			err:      NewExitError(errors.New("boom"), ExitValidationError),
			wantCode: ExitValidationError,
		},
		{
			name:     "wrapped validation sentinel",
			err:      fmt.Errorf("rejecting request: %w", ErrValidation),
			wantCode: ExitValidationError,
		},
		{
			name:     "validation detail error",
			err:      NewValidationError("unknown kind", "", "kinds", ""),
			wantCode: ExitValidationError,
		},
		{
			name:     "plain error",
			err:      errors.New("disk full"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "General Error", ExitCodeName(ExitGeneralError))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := NewValidationError("bad request", "", "", "")
	exitErr := NewExitError(inner, ExitValidationError)

	assert.True(t, errors.Is(exitErr, ErrValidation))

	var detail *DetailError
	assert.True(t, errors.As(exitErr, &detail))
}
