package errors

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that logs errors through zerolog.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool

	log zerolog.Logger
}

// NewLogHandler creates a LogHandler writing to stderr.
func NewLogHandler(verbose bool) *LogHandler {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return &LogHandler{
		Verbose: verbose,
		log:     zerolog.New(output).With().Timestamp().Str("app", "tether").Logger(),
	}
}

// HandleError logs a TetherError.
func (h *LogHandler) HandleError(err *TetherError) {
	if err == nil {
		return
	}
	ev := h.log.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String())
	if err.Signal != "" {
		ev = ev.Str("signal", err.Signal)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Err(err.Err).Msg("bridge error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.log.Error().
		Str("op", err.Op).
		Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
