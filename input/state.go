// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input holds the input state shared between the event
// dispatch loop and the render loop: the set of pressed keys,
// the accumulated pointer motion, and the render thread health flag.
package input

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"cogentcore.org/gloom/events/key"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the input state shared between the event dispatch loop,
// which writes it, and the render loop, which reads it every frame.
// Each lock is held for a single read or write only. It must be
// created with [NewState].
type State struct {
	keysMu sync.Mutex
	keys   []key.Codes

	deltaMu sync.Mutex
	delta   mgl32.Vec2

	unhealthy atomic.Bool
}

// NewState returns a new [State] with no keys pressed,
// no pointer motion, and a healthy render thread.
func NewState() *State {
	return &State{keys: make([]key.Codes, 0, 10)}
}

// locked runs f with mu held, for a single read or write. A panic
// in f is recovered and logged, and the operation is skipped for this
// event or frame instead of taking down the caller. The deferred
// Unlock runs before the recover, so mu is never left held.
func locked(mu *sync.Mutex, op string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("input: skipped "+op, "panic", fmt.Sprint(r))
		}
	}()
	mu.Lock()
	defer mu.Unlock()
	f()
}

// RecordKey records that the given key was pressed or released.
// Pressing an already pressed key and releasing a key that is not
// pressed are both no-ops. [key.CodeUnknown] is ignored.
func (st *State) RecordKey(code key.Codes, pressed bool) {
	if code == key.CodeUnknown {
		return
	}
	locked(&st.keysMu, "RecordKey", func() {
		i := slices.Index(st.keys, code)
		switch {
		case pressed && i < 0:
			st.keys = append(st.keys, code)
		case !pressed && i >= 0:
			st.keys = slices.Delete(st.keys, i, i+1)
		}
	})
}

// Keys returns a copy of the currently pressed keys,
// in the order they were first pressed.
func (st *State) Keys() []key.Codes {
	var ks []key.Codes
	locked(&st.keysMu, "Keys", func() { ks = slices.Clone(st.keys) })
	return ks
}

// IsPressed returns whether the given key is currently pressed.
func (st *State) IsPressed(code key.Codes) bool {
	var ok bool
	locked(&st.keysMu, "IsPressed", func() { ok = slices.Contains(st.keys, code) })
	return ok
}

// AddDelta accumulates the given pointer motion.
func (st *State) AddDelta(dx, dy float32) {
	locked(&st.deltaMu, "AddDelta", func() {
		st.delta = st.delta.Add(mgl32.Vec2{dx, dy})
	})
}

// SnapshotAndClearDelta returns the pointer motion accumulated since
// the previous call and resets it to zero, as one operation.
func (st *State) SnapshotAndClearDelta() (dx, dy float32) {
	locked(&st.deltaMu, "SnapshotAndClearDelta", func() {
		dx, dy = st.delta.X(), st.delta.Y()
		st.delta = mgl32.Vec2{}
	})
	return dx, dy
}

// MarkUnhealthy records that the render thread has terminated
// abnormally. It returns true only for the call that made the
// transition; the flag never goes back to healthy.
func (st *State) MarkUnhealthy() bool {
	return st.unhealthy.CompareAndSwap(false, true)
}

// Healthy returns whether the render thread is still alive.
func (st *State) Healthy() bool {
	return !st.unhealthy.Load()
}
