package object

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// modulePath marks the native-base boundary: types declared inside this
// module are platform-supplied and declare no user signals.
const modulePath = "github.com/go-tether/tether"

// signalSlot locates one declared signal on a registered type.
type signalSlot struct {
	// Name is the signal identifier routed through the engine.
	Name string
	// index is the field index path from the proxy struct to the Signal.
	index []int
}

// TypeInfo is the static, per-type registration record: the native type
// name, whether instances participate in native reference counting, and the
// signal table built once at registration time.
type TypeInfo struct {
	goType     reflect.Type
	nativeName string
	refCounted bool
	signals    []signalSlot
	factory    func() Object
}

// NativeName returns the engine-side type identifier.
func (ti *TypeInfo) NativeName() string { return ti.nativeName }

// RefCounted reports whether instances own a ref-counted native reference.
func (ti *TypeInfo) RefCounted() bool { return ti.refCounted }

// SignalNames returns the declared signal identifiers in discovery order:
// the most-derived type's signals before any embedded ancestor's.
func (ti *TypeInfo) SignalNames() []string {
	names := make([]string, len(ti.signals))
	for i, s := range ti.signals {
		names[i] = s.Name
	}
	return names
}

// typeTable holds all registered proxy types.
type typeTable struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*TypeInfo
	byName map[string]*TypeInfo
}

var types = &typeTable{
	byType: make(map[reflect.Type]*TypeInfo),
	byName: make(map[string]*TypeInfo),
}

// RegisterType registers the proxy type T under the given native type name
// and builds its signal table. refCounted declares whether the native type
// participates in reference counting. Registration is idempotent for the
// same (type, name) pair and fails with ErrConflictingRegistration
// otherwise. T must embed Base.
func RegisterType[T any](nativeName string, refCounted bool) error {
	var zero T
	if _, ok := any(&zero).(Object); !ok {
		return fmt.Errorf("object.RegisterType: %T must embed object.Base", zero)
	}

	t := reflect.TypeOf(zero)
	types.mu.Lock()
	defer types.mu.Unlock()

	if old, ok := types.byType[t]; ok {
		if old.nativeName == nativeName && old.refCounted == refCounted {
			return nil
		}
		return ErrConflictingRegistration
	}
	if old, ok := types.byName[nativeName]; ok && old.goType != t {
		return ErrConflictingRegistration
	}

	info := &TypeInfo{
		goType:     t,
		nativeName: nativeName,
		refCounted: refCounted,
		signals:    collectSignals(t, nil),
		factory: func() Object {
			var v T
			return any(&v).(Object)
		},
	}
	types.byType[t] = info
	types.byName[nativeName] = info
	return nil
}

// infoFor looks up the registration record for a proxy struct type.
func infoFor(t reflect.Type) (*TypeInfo, bool) {
	types.mu.RLock()
	info, ok := types.byType[t]
	types.mu.RUnlock()
	return info, ok
}

// infoForName looks up a registration record by native type name.
func infoForName(name string) (*TypeInfo, bool) {
	types.mu.RLock()
	info, ok := types.byName[name]
	types.mu.RUnlock()
	return info, ok
}

var signalType = reflect.TypeOf(Signal{})

// collectSignals builds the signal table for a proxy struct type. Order is
// the type chain's: the struct's own exported Signal fields in declaration
// order first, then each embedded ancestor's, recursively. The walk stops
// at the native-base boundary (types declared in this module).
func collectSignals(t reflect.Type, prefix []int) []signalSlot {
	var slots []signalSlot
	var parents []reflect.StructField

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			// Ancestors are value-embedded structs; the walk stops before
			// the native-base boundary.
			if f.Type.Kind() == reflect.Struct && !isPlatformType(f.Type) {
				parents = append(parents, f)
			}
			continue
		}
		if f.Type != signalType || !f.IsExported() {
			continue
		}
		name := f.Tag.Get("signal")
		if name == "" {
			name = f.Name
		}
		idx := make([]int, 0, len(prefix)+1)
		idx = append(idx, prefix...)
		idx = append(idx, i)
		slots = append(slots, signalSlot{Name: name, index: idx})
	}

	// Own members precede every ancestor's.
	for _, f := range parents {
		idx := make([]int, 0, len(prefix)+1)
		idx = append(idx, prefix...)
		idx = append(idx, f.Index[0])
		slots = append(slots, collectSignals(f.Type, idx)...)
	}
	return slots
}

// isPlatformType reports whether t sits above the native-base boundary.
func isPlatformType(t reflect.Type) bool {
	pkg := t.PkgPath()
	return pkg == modulePath || strings.HasPrefix(pkg, modulePath+"/")
}
