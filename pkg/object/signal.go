package object

import (
	"fmt"
	"reflect"
	"sync"
)

// Signal is an externally-invokable callback slot declared as an exported
// struct field on a proxy type:
//
//	type Door struct {
//	    object.Base
//	    Opened object.Signal `signal:"opened"`
//	}
//
// The engine routes raised events to the bound callable through
// OnSignalRaised. A declared but unbound signal is a normal state; raising
// it is a silent no-op.
type Signal struct {
	mu sync.Mutex
	fn any
}

// Bind sets the signal's callable. fn must be a func; its parameter count
// and types define what the native side may raise. Bind panics if fn is not
// a func.
func (s *Signal) Bind(fn any) {
	if fn != nil && reflect.TypeOf(fn).Kind() != reflect.Func {
		panic(fmt.Sprintf("object: Signal.Bind requires a func, got %T", fn))
	}
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

// Unbind clears the signal's callable.
func (s *Signal) Unbind() {
	s.mu.Lock()
	s.fn = nil
	s.mu.Unlock()
}

// Bound reports whether a callable is currently bound.
func (s *Signal) Bound() bool {
	return s.callable() != nil
}

func (s *Signal) callable() any {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	return fn
}

// setCallable installs a saved callable without Bind's func check; saved
// values were validated when first bound.
func (s *Signal) setCallable(fn any) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

// signalAt resolves a signal slot to the Signal field on a live proxy.
func signalAt(obj Object, slot signalSlot) *Signal {
	v := reflect.ValueOf(obj).Elem().FieldByIndex(slot.index)
	return v.Addr().Interface().(*Signal)
}
