package object

import (
	"sync"
	"weak"

	"github.com/go-tether/tether/pkg/native"
)

// callbackTable is the managed half of the engine's callback-handles: a
// process-wide map from token to a weak reference to the target proxy. The
// engine stores tokens and echoes them back; it never sees proxy pointers.
// References are weak so a token held by the engine cannot keep an
// otherwise-unreferenced proxy alive.
type callbackTable struct {
	mu   sync.Mutex
	next native.CallbackToken
	m    map[native.CallbackToken]weak.Pointer[Base]
}

var callbacks = &callbackTable{
	m: make(map[native.CallbackToken]weak.Pointer[Base]),
}

// mint creates a token targeting b.
func (ct *callbackTable) mint(b *Base) native.CallbackToken {
	ct.mu.Lock()
	ct.next++
	tok := ct.next
	ct.m[tok] = weak.Make(b)
	ct.mu.Unlock()
	return tok
}

// resolve returns the token's target if it is still alive.
func (ct *callbackTable) resolve(tok native.CallbackToken) (*Base, bool) {
	ct.mu.Lock()
	wp, ok := ct.m[tok]
	ct.mu.Unlock()
	if !ok {
		return nil, false
	}
	b := wp.Value()
	if b == nil {
		return nil, false
	}
	return b, true
}

// release drops the token, if present.
func (ct *callbackTable) release(tok native.CallbackToken) {
	if tok == native.NoCallback {
		return
	}
	ct.mu.Lock()
	delete(ct.m, tok)
	ct.mu.Unlock()
}
