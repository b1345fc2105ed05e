package object

import (
	"fmt"
	"reflect"

	"github.com/go-tether/tether/pkg/errors"
	"github.com/go-tether/tether/pkg/native"
)

// OnSignalRaised is the inbound entry point the engine calls when a native
// event fires. It resolves the live proxy for h, walks the proxy's signal
// table in discovery order, and invokes the first matching bound callable
// (shadowing semantics, never multi-dispatch).
//
// A declared but unbound signal is a normal state and a silent no-op. A
// bound callable whose parameter count differs from the supplied arguments
// fails with ErrArgumentCountMismatch.
func OnSignalRaised(h native.Handle, name string, args []any) error {
	if traceEnabled.Load() {
		traceRaise(uintptr(h), name, len(args))
	}

	obj, ok := Resolve(h)
	if !ok {
		err := fmt.Errorf("signal %q raised on handle %#x: %w", name, uintptr(h), ErrUnknownHandle)
		errors.Report(&errors.TetherError{
			Op:     "object.OnSignalRaised",
			Kind:   errors.KindRegistry,
			Signal: name,
			Err:    err,
		})
		return err
	}

	info := obj.objectBase().st.info
	for _, slot := range info.signals {
		if slot.Name != name {
			continue
		}
		return invokeSlot(obj, slot, args)
	}
	// Not declared on this type chain: nothing routed here.
	return nil
}

func invokeSlot(obj Object, slot signalSlot, args []any) error {
	fn := signalAt(obj, slot).callable()
	if fn == nil {
		// Declared but not yet subscribed.
		return nil
	}

	ft := reflect.TypeOf(fn)
	if ft.NumIn() != len(args) {
		err := fmt.Errorf("signal %q: got %d args, callable takes %d: %w",
			slot.Name, len(args), ft.NumIn(), ErrArgumentCountMismatch)
		errors.Report(&errors.TetherError{
			Op:     "object.OnSignalRaised",
			Kind:   errors.KindSignal,
			Signal: slot.Name,
			Err:    err,
		})
		return err
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		v, err := convertArg(a, ft.In(i))
		if err != nil {
			err = fmt.Errorf("signal %q arg %d: %w", slot.Name, i, err)
			errors.Report(&errors.TetherError{
				Op:     "object.OnSignalRaised",
				Kind:   errors.KindSignal,
				Signal: slot.Name,
				Err:    err,
			})
			return err
		}
		in[i] = v
	}

	// The callable is user code invoked from an engine thread; a panic must
	// not unwind into the native caller.
	defer errors.Recover("object.OnSignalRaised")
	reflect.ValueOf(fn).Call(in)
	return nil
}
