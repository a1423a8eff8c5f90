// Package errors provides structured error reporting for volumeview hosts
// and attribute loading.
//
// The widget itself never fails: out-of-range input is clamped. Errors only
// arise at the edges, when attribute bundles are parsed or when a host
// callback panics.
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
	// KindParsing indicates a malformed attribute value.
	KindParsing
	// KindConfig indicates an unreadable or unsupported attribute bundle.
	KindConfig
	// KindRender indicates a rendering or host output failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ViewError represents a structured error.
type ViewError struct {
	// Op is the operation that failed (e.g., "attrs.Parse").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Attr is the attribute name, if applicable.
	Attr string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ViewError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("%s [%s] attr=%s: %v", e.Op, e.Kind, e.Attr, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.VolumeView.Paint").
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

// ValueError describes an attribute value that could not be interpreted.
type ValueError struct {
	// Expected names the accepted form (e.g., "dimension").
	Expected string
	// Got is the raw value.
	Got any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("expected %s, got %T %v", e.Expected, e.Got, e.Got)
}

// Handler receives errors reported by volumeview components.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ViewError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
