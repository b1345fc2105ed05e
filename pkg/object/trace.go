package object

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// traceLog receives one debug line per raised signal while tracing is on.
var traceLog = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).With().Timestamp().Str("app", "tether").Logger()

var traceEnabled atomic.Bool

// SetSignalTracing toggles a debug log line for every signal the engine
// raises, including raises that resolve no live proxy. Off by default.
func SetSignalTracing(enabled bool) {
	traceEnabled.Store(enabled)
}

// SignalTracing reports whether signal tracing is enabled.
func SignalTracing() bool {
	return traceEnabled.Load()
}

// traceRaise logs one raised signal.
func traceRaise(h uintptr, name string, argc int) {
	traceLog.Debug().
		Uint64("handle", uint64(h)).
		Str("signal", name).
		Int("args", argc).
		Msg("signal raised")
}
