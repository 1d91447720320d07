// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the main thread side of gloom: the event
// dispatch loop, which feeds the shared input state, and the
// supervisor that watches the render goroutine.
package system

import (
	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/events"
)

// ErrRenderThreadDied is returned by [Dispatcher.Run] when the render
// goroutine has failed and the process should exit.
var ErrRenderThreadDied = errors.New("system: render thread died")

// EventSource is the source of window events. It is
// implemented by the desktop driver window.
type EventSource interface {

	// WaitEvents blocks until at least one event is available or
	// Wake is called, and returns the pending events, which may be
	// none. It must be called on the main thread.
	WaitEvents() []events.Event

	// Wake unblocks a pending or future WaitEvents call.
	// It is safe to call from any goroutine.
	Wake()
}
