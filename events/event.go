// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window and input events that
// drive the event dispatch loop.
package events

import (
	"fmt"

	"cogentcore.org/gloom/events/key"
)

// Event is the interface for all window and input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types
}

// WindowClose is a request to close the window.
type WindowClose struct{}

func (ev *WindowClose) Type() Types { return Close }

func (ev *WindowClose) String() string { return "Close" }

// Key is a physical key press or release.
type Key struct {
	// Typ is KeyDown or KeyUp.
	Typ Types

	// Code is the physical key.
	Code key.Codes
}

// NewKey returns a new [Key] event for the given code,
// with KeyDown type if pressed and KeyUp otherwise.
func NewKey(code key.Codes, pressed bool) *Key {
	ev := &Key{Typ: KeyUp, Code: code}
	if pressed {
		ev.Typ = KeyDown
	}
	return ev
}

func (ev *Key) Type() Types { return ev.Typ }

// Pressed returns whether this is a KeyDown event.
func (ev *Key) Pressed() bool { return ev.Typ == KeyDown }

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v}", ev.Typ, ev.Code)
}

// Mouse is relative pointer motion since the previous
// MouseMove event, in window pixels.
type Mouse struct {
	DX, DY float32
}

func (ev *Mouse) Type() Types { return MouseMove }

func (ev *Mouse) String() string {
	return fmt.Sprintf("MouseMove{%g, %g}", ev.DX, ev.DY)
}
