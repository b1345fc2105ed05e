package object

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureTraceLog redirects the trace logger into a buffer.
func captureTraceLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := traceLog
	traceLog = zerolog.New(&buf)
	t.Cleanup(func() { traceLog = orig })
	return &buf
}

func TestSignalTracingEmitsDebugLine(t *testing.T) {
	setupSignalEngine(t)
	buf := captureTraceLog(t)

	SetSignalTracing(true)

	w, err := New[widgetProxy]()
	require.NoError(t, err)
	w.Foo.Bind(func() {})
	require.NoError(t, OnSignalRaised(w.NativeHandle(), "foo", nil))

	out := buf.String()
	assert.Contains(t, out, `"signal":"foo"`)
	assert.Contains(t, out, "signal raised")
}

func TestSignalTracingCoversUnresolvedRaises(t *testing.T) {
	setupSignalEngine(t)
	buf := captureTraceLog(t)

	SetSignalTracing(true)

	err := OnSignalRaised(999, "ghost", []any{1, 2})
	require.ErrorIs(t, err, ErrUnknownHandle)
	out := buf.String()
	assert.Contains(t, out, `"signal":"ghost"`)
	assert.Contains(t, out, `"args":2`)
}

func TestSignalTracingOffByDefault(t *testing.T) {
	setupSignalEngine(t) // ResetForTest clears the toggle
	buf := captureTraceLog(t)

	assert.False(t, SignalTracing())

	w, err := New[widgetProxy]()
	require.NoError(t, err)
	require.NoError(t, OnSignalRaised(w.NativeHandle(), "foo", nil))
	assert.Empty(t, buf.String())
}
