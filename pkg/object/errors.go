package object

import "errors"

// Sentinel errors for proxy lifecycle and signal invocation.
var (
	// ErrUseAfterDispose is returned when a native call is attempted through
	// a proxy whose native object is already gone.
	ErrUseAfterDispose = errors.New("object: use after dispose")

	// ErrNotRegistered is returned when a proxy type is constructed before
	// RegisterType has been called for it.
	ErrNotRegistered = errors.New("object: type not registered")

	// ErrConflictingRegistration is returned when a type is re-registered
	// under a different native name, or a native name is reused for a
	// different type.
	ErrConflictingRegistration = errors.New("object: conflicting type registration")

	// ErrUnknownHandle is returned when the native side raises a signal for
	// a handle with no live proxy.
	ErrUnknownHandle = errors.New("object: no live proxy for handle")

	// ErrArgumentCountMismatch is returned when a signal is raised with a
	// different number of arguments than its bound callable expects.
	ErrArgumentCountMismatch = errors.New("object: signal argument count mismatch")

	// ErrArgumentTypeMismatch is returned when a raised signal argument
	// cannot be converted to the bound callable's parameter type.
	ErrArgumentTypeMismatch = errors.New("object: signal argument type mismatch")
)
