package object

import (
	"reflect"
	"weak"

	"github.com/go-tether/tether/pkg/native"
)

// Shutdown disposes every proxy still resolvable from the live-object
// registry. A sweep racing ordinary disposal is safe: the per-proxy
// disposed guard makes the second disposal a no-op.
func Shutdown() {
	for _, obj := range LiveObjects() {
		obj.objectBase().Dispose()
	}
}

// ResetForTest resets all global bridge state for test isolation: the
// installed engine, the live-object registry, the callback-token table, the
// type table, and the recorded engine version. This should only be called
// from tests.
func ResetForTest() {
	native.SetEngine(nil)

	registry.mu.Lock()
	registry.entries = make(map[native.Handle]*registryEntry)
	registry.mu.Unlock()

	callbacks.mu.Lock()
	callbacks.m = make(map[native.CallbackToken]weak.Pointer[Base])
	callbacks.next = 0
	callbacks.mu.Unlock()

	types.mu.Lock()
	types.byType = make(map[reflect.Type]*TypeInfo)
	types.byName = make(map[string]*TypeInfo)
	types.mu.Unlock()

	SetEngineVersion("")
	SetSignalTracing(false)
}
