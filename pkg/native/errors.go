package native

import "errors"

// Sentinel errors for the native boundary.
var (
	// ErrEngineUnavailable is returned when no engine has been installed.
	ErrEngineUnavailable = errors.New("native: engine not available")

	// ErrEntryPointMissing is returned when the native factory for a type
	// cannot be resolved.
	ErrEntryPointMissing = errors.New("native: entry point missing")
)
