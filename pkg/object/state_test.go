package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tether/tether/pkg/errors"
	"github.com/go-tether/tether/pkg/native"
)

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	errs   []*errors.TetherError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.TetherError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func TestSaveRestoreRoundTrip(t *testing.T) {
	setupSignalEngine(t)

	old, err := New[motionSensor]()
	require.NoError(t, err)
	h := old.NativeHandle()

	moved := 0
	old.Moved.Bind(func() { moved++ })
	old.Reset.Bind(func() {})

	state := SaveSignalState(old)
	require.Len(t, state.Pairs, 2)
	// Pairs appear in discovery order.
	assert.Equal(t, "moved", state.Pairs[0].Name)
	assert.Equal(t, "reset", state.Pairs[1].Name)

	// Hot-swap: a replacement proxy adopts the same handle, then the saved
	// bindings are rehydrated onto it.
	replacement, err := NewWithHandle[motionSensor](h)
	require.NoError(t, err)
	RestoreSignalState(replacement, state)

	assert.True(t, replacement.Moved.Bound())
	assert.True(t, replacement.Reset.Bound())
	assert.False(t, replacement.Triggered.Bound())

	require.NoError(t, OnSignalRaised(h, "moved", nil))
	assert.Equal(t, 1, moved)
}

func TestSaveSkipsUnboundSignals(t *testing.T) {
	setupSignalEngine(t)

	m, err := New[motionSensor]()
	require.NoError(t, err)

	state := SaveSignalState(m)
	assert.Empty(t, state.Pairs)
}

func TestRestoreDropsRemovedSignals(t *testing.T) {
	setupSignalEngine(t)

	w, err := New[widgetProxy]()
	require.NoError(t, err)

	state := &SignalState{Pairs: []SignalPair{
		{Name: "foo", Callable: func() {}},
		{Name: "vanished", Callable: func() {}},
	}}
	RestoreSignalState(w, state)

	assert.True(t, w.Foo.Bound())
	assert.False(t, w.Bar.Bound())
}

func TestRestoreDoesNotReconnectRoutes(t *testing.T) {
	eng := setupSignalEngine(t)

	w, err := New[widgetProxy]()
	require.NoError(t, err)
	w.Foo.Bind(func() {})
	state := SaveSignalState(w)

	before := len(eng.SignalRoutes())
	RestoreSignalState(w, state)
	assert.Len(t, eng.SignalRoutes(), before)
}

func TestSnapshotVersionStamp(t *testing.T) {
	setupSignalEngine(t)
	SetEngineVersion("v1.4.0")

	w, err := New[widgetProxy]()
	require.NoError(t, err)
	state := SaveSignalState(w)
	assert.Equal(t, "v1.4.0", state.EngineVersion)
}

func TestRestoreAcrossEngineDowngradeIsReported(t *testing.T) {
	setupSignalEngine(t)

	handler := &recordingHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	w, err := New[widgetProxy]()
	require.NoError(t, err)

	SetEngineVersion("v2.0.0")
	w.Foo.Bind(func() {})
	state := SaveSignalState(w)

	SetEngineVersion("v1.9.0")
	RestoreSignalState(w, state)

	// The restore proceeds but the downgrade is reported.
	assert.True(t, w.Foo.Bound())
	require.Len(t, handler.errs, 1)
	assert.Equal(t, errors.KindSignal, handler.errs[0].Kind)
}

func TestRestoreNilStateIsNoOp(t *testing.T) {
	setupSignalEngine(t)

	w, err := New[widgetProxy]()
	require.NoError(t, err)
	RestoreSignalState(w, nil)
	assert.False(t, w.Foo.Bound())
}

func TestRegistryResolveAfterReplacement(t *testing.T) {
	setupSignalEngine(t)

	old, err := New[widgetProxy]()
	require.NoError(t, err)
	h := old.NativeHandle()

	replacement, err := NewWithHandle[widgetProxy](h)
	require.NoError(t, err)

	// Disposing the superseded proxy must not evict the replacement: the
	// registry matches entries by identity, not by handle alone.
	old.Dispose()

	got, ok := Resolve(h)
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, 1, LiveCount())
}

func TestResolveUnknownHandle(t *testing.T) {
	setupSignalEngine(t)

	_, ok := Resolve(native.Handle(12345))
	assert.False(t, ok)
}
