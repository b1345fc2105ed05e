package object

import (
	"fmt"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/go-tether/tether/pkg/errors"
)

// SignalPair is one saved (signal identifier, bound callable) pair.
type SignalPair struct {
	Name     string
	Callable any
}

// SignalState is the ordered bound-signal snapshot of one proxy, produced
// by SaveSignalState and consumed by RestoreSignalState across a proxy
// replacement (hot-swap). It never travels over a wire; the callables are
// live in-process values.
type SignalState struct {
	// EngineVersion is the engine version the snapshot was captured under,
	// when one is known ("v"-prefixed semver).
	EngineVersion string
	Pairs         []SignalPair
}

var (
	versionMu     sync.RWMutex
	engineVersion string
)

// SetEngineVersion records the running engine's version for snapshot
// tagging. Non-semver values are kept verbatim but never compared.
func SetEngineVersion(v string) {
	versionMu.Lock()
	engineVersion = v
	versionMu.Unlock()
}

func currentEngineVersion() string {
	versionMu.RLock()
	defer versionMu.RUnlock()
	return engineVersion
}

// SaveSignalState walks the proxy's signal table in discovery order and
// records every signal that currently has a bound callable.
func SaveSignalState(obj Object) *SignalState {
	state := &SignalState{EngineVersion: currentEngineVersion()}
	b := obj.objectBase()
	if b.st == nil {
		return state
	}
	for _, slot := range b.st.info.signals {
		if fn := signalAt(obj, slot).callable(); fn != nil {
			state.Pairs = append(state.Pairs, SignalPair{Name: slot.Name, Callable: fn})
		}
	}
	return state
}

// RestoreSignalState rebinds a saved snapshot onto a replacement proxy tied
// to the same native handle. Pairs whose signal no longer exists on the new
// type are silently dropped. Restore never reconnects native routing; the
// engine-side routes survive the replacement on their own.
func RestoreSignalState(obj Object, state *SignalState) {
	if state == nil {
		return
	}
	checkSnapshotVersion(state)

	b := obj.objectBase()
	if b.st == nil {
		return
	}
	slots := b.st.info.signals
	for _, pair := range state.Pairs {
		for _, slot := range slots {
			if slot.Name == pair.Name {
				signalAt(obj, slot).setCallable(pair.Callable)
				break
			}
		}
	}
}

// checkSnapshotVersion reports a restore across an engine downgrade; the
// restore still proceeds.
func checkSnapshotVersion(state *SignalState) {
	cur := currentEngineVersion()
	if cur == "" || state.EngineVersion == "" {
		return
	}
	if !semver.IsValid(cur) || !semver.IsValid(state.EngineVersion) {
		return
	}
	if semver.Compare(cur, state.EngineVersion) < 0 {
		errors.Report(&errors.TetherError{
			Op:   "object.RestoreSignalState",
			Kind: errors.KindSignal,
			Err: fmt.Errorf("snapshot captured under engine %s, running %s",
				state.EngineVersion, cur),
		})
	}
}
