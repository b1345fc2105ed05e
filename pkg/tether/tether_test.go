package tether

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tether/tether/pkg/native"
	"github.com/go-tether/tether/pkg/object"
	"github.com/go-tether/tether/pkg/objecttest"
)

type latch struct {
	object.Base
	Released object.Signal `signal:"released"`
}

func TestInitAndShutdown(t *testing.T) {
	object.ResetForTest()
	t.Cleanup(object.ResetForTest)

	eng := objecttest.NewFakeEngine()
	Init(eng, &Config{Engine: EngineConfig{Version: "v1.0.0"}})

	got, err := native.CurrentEngine()
	require.NoError(t, err)
	assert.Equal(t, native.Engine(eng), got)

	require.NoError(t, object.RegisterType[latch]("Latch", true))
	l, err := object.New[latch]()
	require.NoError(t, err)

	// Snapshots pick up the configured engine version.
	assert.Equal(t, "v1.0.0", object.SaveSignalState(l).EngineVersion)

	Shutdown()
	assert.True(t, l.IsDisposed())
	assert.Equal(t, 0, object.LiveCount())
}

func TestInitEnablesSignalTracing(t *testing.T) {
	object.ResetForTest()
	t.Cleanup(object.ResetForTest)

	Init(objecttest.NewFakeEngine(), &Config{Log: LogConfig{TraceSignals: true}})
	assert.True(t, object.SignalTracing())
}

func TestInitNilConfig(t *testing.T) {
	object.ResetForTest()
	t.Cleanup(object.ResetForTest)

	Init(objecttest.NewFakeEngine(), nil)
	_, err := native.CurrentEngine()
	require.NoError(t, err)
}
