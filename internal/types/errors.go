package types

import (
	"fmt"
	"strings"
)

// Issue is a single schema violation located by its dotted JSON path.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError reports every field of a submitted specification that
// did not match the schema.
type ValidationError struct {
	Issues []Issue
	Err    error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(issues []Issue, err error) error {
	return &ValidationError{Issues: issues, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Issues) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("validation error: %v", e.Err)
		}
		return "validation error"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MalformedInputError describes a generation parameter of the wrong shape.
// Callers normally log it and fall back to the parameter's default.
type MalformedInputError struct {
	Field  string
	Value  string
	Reason string
}

// NewMalformedInputError constructs a MalformedInputError.
func NewMalformedInputError(field, value, reason string) error {
	return &MalformedInputError{Field: field, Value: value, Reason: reason}
}

func (e *MalformedInputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("malformed input: %s=%q: %s", e.Field, e.Value, e.Reason)
}

// NetworkFailure wraps a failed or timed out brand fetch.
type NetworkFailure struct {
	URL string
	Err error
}

// NewNetworkFailure constructs a NetworkFailure.
func NewNetworkFailure(url string, err error) error {
	return &NetworkFailure{URL: url, Err: err}
}

func (e *NetworkFailure) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("network failure: %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *NetworkFailure) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PackagingError indicates the export archive could not be produced.
type PackagingError struct {
	File string
	Err  error
}

// NewPackagingError constructs a PackagingError.
func NewPackagingError(file string, err error) error {
	return &PackagingError{File: file, Err: err}
}

func (e *PackagingError) Error() string {
	if e == nil {
		return ""
	}
	if e.File != "" {
		return fmt.Sprintf("packaging error: %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("packaging error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *PackagingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
