package docerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an OpenAPI document.
// This includes JSON/YAML deserialization errors and documents missing the
// required top-level markers (the openapi version field and the paths map).
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the format the document was parsed as: "json", "yaml",
	// or "" when neither format accepted the input
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when loading exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "file_size", "response_size", "cached_documents"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unknown
// snippet targets.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
