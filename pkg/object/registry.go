package object

import (
	"sync"
	"weak"

	"github.com/go-tether/tether/pkg/native"
)

// registryEntry ties one handle to one proxy. The proxy is held weakly so
// the registry never keeps an otherwise-unreferenced proxy alive. Entries
// are matched by identity, which makes a stale entry for a reused handle
// detectable.
type registryEntry struct {
	handle native.Handle
	ref    weak.Pointer[Base]
}

// liveRegistry is the process-wide table of managed proxies currently tied
// to a native handle.
type liveRegistry struct {
	mu      sync.RWMutex
	entries map[native.Handle]*registryEntry
}

var registry = &liveRegistry{
	entries: make(map[native.Handle]*registryEntry),
}

// register inserts (handle, proxy). A previous entry for the same handle is
// overwritten: the tie-in protocol guarantees its proxy is dead or already
// disposed when the handle comes back around.
func (r *liveRegistry) register(b *Base, h native.Handle) *registryEntry {
	r.mu.Lock()
	e := &registryEntry{handle: h, ref: weak.Make(b)}
	r.entries[h] = e
	r.mu.Unlock()
	return e
}

// unregister removes the entry, matched by identity rather than handle
// alone, so a handle reused by a newer proxy is never accidentally removed.
func (r *liveRegistry) unregister(e *registryEntry) {
	r.mu.Lock()
	if cur, ok := r.entries[e.handle]; ok && cur == e {
		delete(r.entries, e.handle)
	}
	r.mu.Unlock()
}

// Resolve returns the live proxy tied to h, if any. A proxy that has been
// collected or disposed does not resolve.
func Resolve(h native.Handle) (Object, bool) {
	registry.mu.RLock()
	e, ok := registry.entries[h]
	registry.mu.RUnlock()
	if !ok {
		return nil, false
	}
	b := e.ref.Value()
	if b == nil || b.st == nil || b.st.disposed.Load() {
		return nil, false
	}
	return b.self, true
}

// LiveObjects returns every proxy currently resolvable from the registry.
// Used for bulk shutdown sweeps.
func LiveObjects() []Object {
	registry.mu.RLock()
	entries := make([]*registryEntry, 0, len(registry.entries))
	for _, e := range registry.entries {
		entries = append(entries, e)
	}
	registry.mu.RUnlock()

	objs := make([]Object, 0, len(entries))
	for _, e := range entries {
		if b := e.ref.Value(); b != nil && b.st != nil && !b.st.disposed.Load() {
			objs = append(objs, b.self)
		}
	}
	return objs
}

// LiveCount returns the number of proxies currently resolvable.
func LiveCount() int {
	return len(LiveObjects())
}
