// Package errors provides structured error handling for the border overlay.
//
// Configuration mistakes (an invalid gradation factor, an empty palette, a
// negative duration) are programmer errors: they are described by
// [ConfigError] values and raised with [Must] so they surface immediately in
// development. Everything else that can go wrong at runtime is reported through
// the global [ErrorHandler] with [Report].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid border or gradient configuration.
	KindConfig
	// KindParsing indicates a configuration value that could not be parsed.
	KindParsing
	// KindRender indicates a rendering error.
	KindRender
	// KindState indicates an overlay transition requested from an unexpected state.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BorderError represents a structured error raised by the overlay packages.
type BorderError struct {
	// Op is the operation that failed (e.g., "overlay.Rotate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BorderError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BorderError) Unwrap() error {
	return e.Err
}

// ConfigError describes a configuration value that violates a constraint.
type ConfigError struct {
	// Field names the offending setting (e.g., "gradation").
	Field string
	// Value is the rejected value.
	Value any
	// Reason explains the violated constraint.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// ParseError represents a failure to parse a configuration value.
type ParseError struct {
	// Field is the setting being parsed.
	Field string
	// DataType is the expected type name.
	DataType string
	// Got is the raw input.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %s: got %q", e.DataType, e.Field, fmt.Sprint(e.Got))
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "preview.loop").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the overlay packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BorderError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Must panics with err if it is non-nil. It is used for configuration
// mistakes that must stop the program rather than degrade silently.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
