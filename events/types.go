// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of window / input event.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Close is sent when the user asks the window to close,
	// typically through the window manager close button.
	Close

	// KeyDown is sent when a key is pressed down, and is
	// repeated while the key is held.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// MouseMove is sent when the pointer moves, with the
	// relative motion since the previous MouseMove event.
	MouseMove

	TypesN
)

var typeNames = [...]string{"UnknownType", "Close", "KeyDown", "KeyUp", "MouseMove"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(?)"
	}
	return typeNames[tp]
}
