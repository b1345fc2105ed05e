package object

import "github.com/go-tether/tether/pkg/native"

// dispose runs the disposal protocol. It is invoked from an explicit
// Dispose call (isExplicit=true) or from the GC cleanup (isExplicit=false)
// and is idempotent: the disposed flag is claimed before any native call,
// so a concurrent or re-entrant disposal sees the guard immediately.
func (st *lifeState) dispose(isExplicit bool) {
	if !st.disposed.CompareAndSwap(false, true) {
		return
	}
	if isExplicit {
		st.cleanup.Stop()
	}

	st.mu.Lock()
	h := st.handle
	st.mu.Unlock()

	if !h.IsNull() {
		// The engine may hold a callback-handle for h. Release it only if
		// its resolved target is still this exact proxy: the handle and the
		// registry can legitimately diverge when a newer proxy was re-tied
		// to the same conceptual native object.
		tok := native.NoCallback
		if t, ok := st.engine.AssociatedCallbackToken(h); ok {
			if target, alive := callbacks.resolve(t); alive && target.st == st {
				tok = t
			}
		}

		if st.ownsRef {
			// On the finalizer path the engine must defer managed-visible
			// side effects; managed code cannot be re-entered here.
			st.engine.NotifyRefCountedDisposed(h, tok, !isExplicit)
		} else {
			st.engine.NotifyDisposed(h, tok)
		}
		callbacks.release(tok)
	}
	callbacks.release(st.token)

	st.mu.Lock()
	st.handle = native.Null
	st.mu.Unlock()

	if st.entry != nil {
		registry.unregister(st.entry)
	}
}
