// Package errors provides structured error handling for the tether bridge.
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
	// KindConstruct indicates a failure while tying a proxy to a native object.
	KindConstruct
	// KindDispose indicates a failure in the disposal protocol.
	KindDispose
	// KindSignal indicates a signal connection or invocation error.
	KindSignal
	// KindRegistry indicates a live-object registry error.
	KindRegistry
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstruct:
		return "construct"
	case KindDispose:
		return "dispose"
	case KindSignal:
		return "signal"
	case KindRegistry:
		return "registry"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TetherError represents a structured error in the tether bridge.
type TetherError struct {
	// Op is the operation that failed (e.g., "object.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Signal is the signal name, if applicable.
	Signal string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TetherError) Error() string {
	if e.Signal != "" {
		return fmt.Sprintf("%s [%s] signal=%s: %v", e.Op, e.Kind, e.Signal, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TetherError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "object.OnSignalRaised").
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

// ErrorHandler receives errors reported by the tether bridge.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TetherError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
