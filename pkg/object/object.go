package object

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-tether/tether/pkg/native"
)

// Object is satisfied by any struct that embeds Base.
type Object interface {
	objectBase() *Base
}

// Base is the embeddable half of a managed proxy. The zero value is an
// untied husk; a proxy becomes live when one of the constructors ties it
// to a native handle.
type Base struct {
	st   *lifeState
	self Object
}

func (b *Base) objectBase() *Base { return b }

// lifeState holds the native-side bookkeeping for one proxy. It is kept
// separate from Base so the GC cleanup argument never references the proxy
// itself, which would keep it reachable forever.
type lifeState struct {
	mu      sync.Mutex
	handle  native.Handle
	ownsRef bool
	token   native.CallbackToken
	entry   *registryEntry
	info    *TypeInfo
	engine  native.Engine

	disposed atomic.Bool
	cleanup  runtime.Cleanup
}

// NativeHandle returns the proxy's native handle for debugging. It returns
// Null once the proxy is disposed or if it was never tied.
func (b *Base) NativeHandle() native.Handle {
	st := b.st
	if st == nil || st.disposed.Load() {
		return native.Null
	}
	st.mu.Lock()
	h := st.handle
	st.mu.Unlock()
	return h
}

// LiveHandle returns the native handle for use in a native call. It fails
// with ErrUseAfterDispose once the proxy is disposed (or was never tied),
// so no native call can be issued through a destroyed object.
func (b *Base) LiveHandle() (native.Handle, error) {
	st := b.st
	if st == nil || st.disposed.Load() {
		return native.Null, ErrUseAfterDispose
	}
	st.mu.Lock()
	h := st.handle
	st.mu.Unlock()
	if h.IsNull() {
		return native.Null, ErrUseAfterDispose
	}
	return h, nil
}

// OwnsNativeReference reports whether this proxy participates in native
// reference counting.
func (b *Base) OwnsNativeReference() bool {
	st := b.st
	return st != nil && st.ownsRef
}

// IsDisposed reports whether the proxy has been disposed.
func (b *Base) IsDisposed() bool {
	st := b.st
	return st == nil || st.disposed.Load()
}

// TypeInfo returns the registered type information for this proxy, or nil
// if the proxy was never tied.
func (b *Base) TypeInfo() *TypeInfo {
	if b.st == nil {
		return nil
	}
	return b.st.info
}

// Dispose releases the proxy's native-side association. It is idempotent:
// calling it on an already disposed proxy is a no-op.
func (b *Base) Dispose() {
	if b.st != nil {
		b.st.dispose(true)
	}
}
