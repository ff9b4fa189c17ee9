package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a start-up value rejected before it reaches a store.
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field string, value any, message string, err error) error {
	return &ValidationError{Field: field, Value: value, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s=%v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ControlError wraps a store rejection for one control of one component.
type ControlError struct {
	Component string
	Control   string
	Err       error
}

// NewControlError constructs a ControlError.
func NewControlError(component, control string, err error) error {
	return &ControlError{Component: component, Control: control, Err: err}
}

func (e *ControlError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("control error [%s.%s]: %v", e.Component, e.Control, e.Err)
	}
	return fmt.Sprintf("control error [%s]: %v", e.Control, e.Err)
}

// Unwrap exposes the root error.
func (e *ControlError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
