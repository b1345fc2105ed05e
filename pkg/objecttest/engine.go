// Package objecttest provides a scriptable fake engine for bridge tests.
package objecttest

import (
	"fmt"
	"sync"

	"github.com/go-tether/tether/pkg/native"
)

// DisposeNotice records one disposal notification received by the engine.
type DisposeNotice struct {
	Handle       native.Handle
	Token        native.CallbackToken
	RefCounted   bool
	WasFinalizer bool
}

// SignalRoute records one ConnectSignal call.
type SignalRoute struct {
	Handle native.Handle
	Name   string
}

// FakeEngine implements native.Engine in memory and records every boundary
// call for assertions.
type FakeEngine struct {
	mu sync.Mutex

	// MissingTypes lists native type names whose factory cannot be
	// resolved; Construct fails for them with ErrEntryPointMissing.
	MissingTypes map[string]bool

	// ConnectErr, when set, is returned by every ConnectSignal call.
	ConnectErr error

	nextHandle native.Handle
	ties       map[native.Handle]native.CallbackToken

	constructed []string
	tieCalls    int
	presetCalls int
	notices     []DisposeNotice
	routes      []SignalRoute
}

// NewFakeEngine creates an empty fake engine.
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{
		MissingTypes: make(map[string]bool),
		ties:         make(map[native.Handle]native.CallbackToken),
	}
}

// Construct allocates the next handle, or fails for a missing type.
func (e *FakeEngine) Construct(typeName string) (native.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.MissingTypes[typeName] {
		return native.Null, fmt.Errorf("%q: %w", typeName, native.ErrEntryPointMissing)
	}
	e.nextHandle++
	e.constructed = append(e.constructed, typeName)
	return e.nextHandle, nil
}

func (e *FakeEngine) RegisterTie(h native.Handle, tok native.CallbackToken, refCounted bool) {
	e.mu.Lock()
	e.ties[h] = tok
	e.tieCalls++
	e.mu.Unlock()
}

func (e *FakeEngine) RegisterTiePreset(h native.Handle, tok native.CallbackToken) {
	e.mu.Lock()
	e.ties[h] = tok
	e.presetCalls++
	e.mu.Unlock()
}

func (e *FakeEngine) NotifyDisposed(h native.Handle, tok native.CallbackToken) {
	e.mu.Lock()
	e.notices = append(e.notices, DisposeNotice{Handle: h, Token: tok})
	delete(e.ties, h)
	e.mu.Unlock()
}

func (e *FakeEngine) NotifyRefCountedDisposed(h native.Handle, tok native.CallbackToken, wasFinalizer bool) {
	e.mu.Lock()
	e.notices = append(e.notices, DisposeNotice{
		Handle:       h,
		Token:        tok,
		RefCounted:   true,
		WasFinalizer: wasFinalizer,
	})
	delete(e.ties, h)
	e.mu.Unlock()
}

func (e *FakeEngine) AssociatedCallbackToken(h native.Handle) (native.CallbackToken, bool) {
	e.mu.Lock()
	tok, ok := e.ties[h]
	e.mu.Unlock()
	return tok, ok
}

func (e *FakeEngine) ConnectSignal(h native.Handle, signal string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ConnectErr != nil {
		return e.ConnectErr
	}
	e.routes = append(e.routes, SignalRoute{Handle: h, Name: signal})
	return nil
}

// ConstructCalls returns the native type names constructed, in order.
func (e *FakeEngine) ConstructCalls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.constructed...)
}

// TieCalls returns how many fresh-path registrations the engine saw.
func (e *FakeEngine) TieCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tieCalls
}

// PresetTieCalls returns how many pre-set-path registrations the engine saw.
func (e *FakeEngine) PresetTieCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.presetCalls
}

// DisposeNotices returns every disposal notification, in order.
func (e *FakeEngine) DisposeNotices() []DisposeNotice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]DisposeNotice(nil), e.notices...)
}

// SignalRoutes returns every connected signal route, in order.
func (e *FakeEngine) SignalRoutes() []SignalRoute {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]SignalRoute(nil), e.routes...)
}

// DropAssociation forgets the callback token for h without a disposal, as a
// native side that invalidated the callback-handle would.
func (e *FakeEngine) DropAssociation(h native.Handle) {
	e.mu.Lock()
	delete(e.ties, h)
	e.mu.Unlock()
}
