// Package native defines the boundary between managed proxies and the native
// engine. Go code never dereferences a Handle; it is an opaque identifier
// owned by the engine and passed back through the Engine interface.
package native

// Handle is an opaque, address-sized identifier for a native-side object.
type Handle uintptr

// Null is the sentinel Handle meaning "unbound".
const Null Handle = 0

// IsNull reports whether the handle is the unbound sentinel.
func (h Handle) IsNull() bool {
	return h == Null
}

// CallbackToken identifies a GC-visible callback-handle the native side may
// hold to call back into one specific managed proxy. Tokens are minted on the
// managed side at tie-in and resolved through the object package; the engine
// only stores and echoes them.
type CallbackToken uint64

// NoCallback is the sentinel CallbackToken meaning "no callback-handle".
const NoCallback CallbackToken = 0
