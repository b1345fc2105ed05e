// Package tether is the embedding API for the managed/native object bridge.
// The embedding runtime installs its engine once at startup; application
// code then constructs proxies through the object package.
package tether

import (
	"github.com/go-tether/tether/pkg/errors"
	"github.com/go-tether/tether/pkg/native"
	"github.com/go-tether/tether/pkg/object"
)

// Version is the bridge library version.
const Version = "v0.3.0"

// Init installs the engine and applies the optional configuration. It must
// run before any proxy is constructed.
func Init(engine native.Engine, cfg *Config) {
	native.SetEngine(engine)
	if cfg == nil {
		return
	}
	if cfg.Log.Verbose {
		errors.SetHandler(errors.NewLogHandler(true))
	}
	object.SetSignalTracing(cfg.Log.TraceSignals)
	if cfg.Engine.Version != "" {
		object.SetEngineVersion(cfg.Engine.Version)
	}
}

// Shutdown disposes every proxy still tied to a native handle. Call when
// the embedding runtime tears down, before the engine goes away.
func Shutdown() {
	object.Shutdown()
}
