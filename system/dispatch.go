// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"slices"
	"sync/atomic"

	"cogentcore.org/gloom/events"
	"cogentcore.org/gloom/events/key"
	"cogentcore.org/gloom/input"
)

// DefaultQuitKeys are the keys that close the window.
var DefaultQuitKeys = []key.Codes{key.CodeEscape, key.CodeQ}

// Dispatcher applies window events to the shared input state.
type Dispatcher struct {
	Input *input.State

	// QuitKeys request quit when pressed or released.
	QuitKeys []key.Codes

	stopped atomic.Bool
}

// NewDispatcher returns a new dispatcher for the given
// input state, with the [DefaultQuitKeys].
func NewDispatcher(in *input.State) *Dispatcher {
	return &Dispatcher{Input: in, QuitKeys: slices.Clone(DefaultQuitKeys)}
}

// Handle applies the given event and returns whether
// it requests the loop to quit.
func (d *Dispatcher) Handle(ev events.Event) bool {
	switch ev := ev.(type) {
	case *events.WindowClose:
		slog.Info("system: window closed")
		return true
	case *events.Key:
		if slices.Contains(d.QuitKeys, ev.Code) {
			slog.Info("system: quit key", "key", ev.Code)
			return true
		}
		d.Input.RecordKey(ev.Code, ev.Pressed())
	case *events.Mouse:
		d.Input.AddDelta(ev.DX, ev.DY)
	}
	return false
}

// Stop makes Run return nil on its next iteration.
// The caller must also wake the event source.
func (d *Dispatcher) Stop() {
	d.stopped.Store(true)
}

// Run runs the event loop on the calling goroutine, which must be
// the main thread, until the window is closed, a quit key is used,
// or Stop is called, in which case it returns nil. Before every
// wait it checks the health of the input state, and returns
// [ErrRenderThreadDied] if the render goroutine has failed.
func (d *Dispatcher) Run(src EventSource) error {
	for {
		if !d.Input.Healthy() {
			slog.Error("system: render thread is not healthy, stopping")
			return ErrRenderThreadDied
		}
		if d.stopped.Load() {
			return nil
		}
		for _, ev := range src.WaitEvents() {
			if d.Handle(ev) {
				return nil
			}
		}
	}
}
