// Package object keeps managed proxy objects and natively owned engine
// objects in sync across the two memory-management regimes.
//
// A proxy is any struct that embeds Base. Its type is registered once with
// RegisterType, which builds the static signal table for the type. Proxies
// are constructed through New (fresh native object), NewWithHandle (adopting
// a handle the engine already owns), or InstantiateFromNative (the engine
// constructing a proxy reactively). Construction ties the proxy to its
// native handle, inserts it into the process-wide live-object registry, and
// connects every declared signal before returning.
//
// Disposal runs from an explicit Dispose call or from the garbage collector
// via runtime.AddCleanup; it is idempotent under concurrent invocation.
// After disposal the proxy is a husk: its handle is Null and LiveHandle
// returns ErrUseAfterDispose.
package object
