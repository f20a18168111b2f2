package config

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates an explicitly named configuration file
	// doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrValidationFailed is matched by every ValidationError.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationErrorCode categorizes validation problems.
type ValidationErrorCode uint8

const (
	// ErrCodeUnknownBackend indicates an unsupported backend name.
	ErrCodeUnknownBackend ValidationErrorCode = iota
	// ErrCodeMissingDevice indicates a backend without a device path.
	ErrCodeMissingDevice
	// ErrCodeEmptySequence indicates a chord with no patterns.
	ErrCodeEmptySequence
	// ErrCodeEmptyPattern indicates a pattern with an empty alternative.
	ErrCodeEmptyPattern
	// ErrCodeUnknownKey indicates a key or group name that doesn't exist.
	ErrCodeUnknownKey
	// ErrCodeInvalidAction indicates an action that is neither a string nor
	// a non-empty array of strings.
	ErrCodeInvalidAction
	// ErrCodeMissingShell indicates a shell action without a usable shell.
	ErrCodeMissingShell
)

// String returns a human-readable name for the error code.
func (c ValidationErrorCode) String() string {
	switch c {
	case ErrCodeUnknownBackend:
		return "unknown_backend"
	case ErrCodeMissingDevice:
		return "missing_device"
	case ErrCodeEmptySequence:
		return "empty_sequence"
	case ErrCodeEmptyPattern:
		return "empty_pattern"
	case ErrCodeUnknownKey:
		return "unknown_key"
	case ErrCodeInvalidAction:
		return "invalid_action"
	case ErrCodeMissingShell:
		return "missing_shell"
	default:
		return "unknown"
	}
}

// FieldError describes one problem at a location in the file, such as
// executors[0].chords[2].sequence[1].
type FieldError struct {
	// Path locates the offending value.
	Path string
	// Message describes the problem.
	Message string
	// Value is the offending value, if any.
	Value any
	// Code categorizes the problem.
	Code ValidationErrorCode
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates every problem found in one file.
type ValidationError struct {
	// File is the configuration file that failed validation.
	File string
	// Errors lists the problems in file order.
	Errors []*FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.File != "" {
		fmt.Fprintf(&b, "invalid configuration %s", e.File)
	} else {
		b.WriteString("invalid configuration")
	}
	fmt.Fprintf(&b, " (%d problem", len(e.Errors))
	if len(e.Errors) != 1 {
		b.WriteString("s")
	}
	b.WriteString("):")
	for _, fe := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(fe.Error())
	}
	return b.String()
}

// Is implements error matching for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}
