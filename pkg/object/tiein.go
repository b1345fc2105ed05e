package object

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/go-tether/tether/pkg/errors"
	"github.com/go-tether/tether/pkg/native"
)

// New constructs a proxy of type T on the fresh path: the native factory is
// called exactly once for a new native object, the tie is registered with
// the engine, the proxy enters the live-object registry, and every declared
// signal is connected before New returns. T must be registered with
// RegisterType first.
func New[T any]() (*T, error) {
	p := new(T)
	obj, ok := any(p).(Object)
	if !ok {
		return nil, fmt.Errorf("object.New: %T does not embed object.Base: %w", p, ErrNotRegistered)
	}
	info, ok := infoFor(reflect.TypeOf(p).Elem())
	if !ok {
		return nil, fmt.Errorf("object.New: %T: %w", p, ErrNotRegistered)
	}

	eng, err := native.CurrentEngine()
	if err != nil {
		return nil, err
	}
	h, err := eng.Construct(info.nativeName)
	if err != nil {
		err = fmt.Errorf("object.New: construct %q: %w", info.nativeName, err)
		errors.Report(&errors.TetherError{
			Op:   "object.New",
			Kind: errors.KindConstruct,
			Err:  err,
		})
		return nil, err
	}

	tieIn(obj, info, h, false, eng)
	return p, nil
}

// NewWithHandle constructs a proxy of type T on the pre-set path, adopting a
// handle the engine already owns. The native factory is never called; a
// lighter engine registration is used. T must be registered with
// RegisterType first.
func NewWithHandle[T any](h native.Handle) (*T, error) {
	p := new(T)
	obj, ok := any(p).(Object)
	if !ok {
		return nil, fmt.Errorf("object.NewWithHandle: %T does not embed object.Base: %w", p, ErrNotRegistered)
	}
	info, ok := infoFor(reflect.TypeOf(p).Elem())
	if !ok {
		return nil, fmt.Errorf("object.NewWithHandle: %T: %w", p, ErrNotRegistered)
	}
	eng, err := native.CurrentEngine()
	if err != nil {
		return nil, err
	}

	tieIn(obj, info, h, true, eng)
	return p, nil
}

// InstantiateFromNative constructs a proxy reactively on behalf of the
// engine: the engine already owns the handle and names the registered type
// it belongs to. Used for native-to-managed lookups that miss the registry.
func InstantiateFromNative(typeName string, h native.Handle) (Object, error) {
	info, ok := infoForName(typeName)
	if !ok {
		return nil, fmt.Errorf("object.InstantiateFromNative: %q: %w", typeName, ErrNotRegistered)
	}
	eng, err := native.CurrentEngine()
	if err != nil {
		return nil, err
	}

	obj := info.factory()
	tieIn(obj, info, h, true, eng)
	return obj, nil
}

// tieIn associates obj with h and publishes it. Signal connection completes
// before tieIn returns, so the handle is never visible to code that could
// raise a signal before routing exists.
func tieIn(obj Object, info *TypeInfo, h native.Handle, preset bool, eng native.Engine) {
	b := obj.objectBase()
	st := &lifeState{
		handle:  h,
		ownsRef: info.refCounted,
		info:    info,
		engine:  eng,
	}
	b.st = st
	b.self = obj

	st.token = callbacks.mint(b)
	if preset {
		eng.RegisterTiePreset(h, st.token)
	} else {
		eng.RegisterTie(h, st.token, info.refCounted)
	}

	st.entry = registry.register(b, h)

	for _, slot := range info.signals {
		if err := eng.ConnectSignal(h, slot.Name); err != nil {
			errors.Report(&errors.TetherError{
				Op:     "object.tieIn",
				Kind:   errors.KindSignal,
				Signal: slot.Name,
				Err:    err,
			})
		}
	}

	// GC-driven disposal. The cleanup argument is the lifeState, never the
	// proxy, so the cleanup can actually run.
	st.cleanup = runtime.AddCleanup(b, func(st *lifeState) {
		st.dispose(false)
	}, st)
}
