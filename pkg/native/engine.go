package native

import "sync"

// Engine is the interface to the native engine. All calls are local,
// synchronous, in-process entry points; none of them blocks.
type Engine interface {
	// Construct allocates a new native object for the given registered type
	// name and returns its handle. Returns ErrEntryPointMissing (possibly
	// wrapped) if no native factory exists for the type.
	Construct(typeName string) (Handle, error)

	// RegisterTie associates a freshly constructed handle with a managed
	// proxy so future native-to-managed lookups resolve to it. refCounted
	// reports whether the native object participates in reference counting.
	RegisterTie(h Handle, tok CallbackToken, refCounted bool)

	// RegisterTiePreset is the lighter registration used when the native
	// side already knows about the handle (pre-set path).
	RegisterTiePreset(h Handle, tok CallbackToken)

	// NotifyDisposed tells the engine a non-owning managed wrapper is gone.
	// tok is the callback-handle to release, or NoCallback.
	NotifyDisposed(h Handle, tok CallbackToken)

	// NotifyRefCountedDisposed tells the engine an owning managed wrapper is
	// gone so it can drop the managed reference. wasFinalizer is true when
	// disposal ran on a collector thread; the engine must then defer any
	// managed-visible side effects.
	NotifyRefCountedDisposed(h Handle, tok CallbackToken, wasFinalizer bool)

	// AssociatedCallbackToken returns the callback-handle the engine holds
	// for h, if any.
	AssociatedCallbackToken(h Handle) (CallbackToken, bool)

	// ConnectSignal routes the named signal on h to managed code.
	ConnectSignal(h Handle, signal string) error
}

var (
	engine   Engine
	engineMu sync.RWMutex
)

// SetEngine installs the engine implementation. Called once by the embedding
// runtime during initialization, before any proxy is constructed.
func SetEngine(e Engine) {
	engineMu.Lock()
	engine = e
	engineMu.Unlock()
}

// CurrentEngine returns the installed engine, or an error if none is set.
func CurrentEngine() (Engine, error) {
	engineMu.RLock()
	e := engine
	engineMu.RUnlock()
	if e == nil {
		return nil, ErrEngineUnavailable
	}
	return e, nil
}
