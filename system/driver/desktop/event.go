// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"cogentcore.org/gloom/events"
	"cogentcore.org/gloom/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (w *Window) closeEvent(gw *glfw.Window) {
	w.Event.Send(&events.WindowClose{})
}

// physical key
func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	ec := GlfwKeyCode(ky)
	if ec == key.CodeUnknown {
		return
	}
	w.Event.Send(events.NewKey(ec, action != glfw.Release))
}

// cursorPosEvent sends the motion since the last position.
func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	if !w.hasLast {
		w.lastX, w.lastY, w.hasLast = x, y, true
		return
	}
	dx, dy := x-w.lastX, y-w.lastY
	w.lastX, w.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	w.Event.Send(&events.Mouse{DX: float32(dx), DY: float32(dy)})
}

var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyA: key.CodeA,
	glfw.KeyB: key.CodeB,
	glfw.KeyC: key.CodeC,
	glfw.KeyD: key.CodeD,
	glfw.KeyE: key.CodeE,
	glfw.KeyF: key.CodeF,
	glfw.KeyG: key.CodeG,
	glfw.KeyH: key.CodeH,
	glfw.KeyI: key.CodeI,
	glfw.KeyJ: key.CodeJ,
	glfw.KeyK: key.CodeK,
	glfw.KeyL: key.CodeL,
	glfw.KeyM: key.CodeM,
	glfw.KeyN: key.CodeN,
	glfw.KeyO: key.CodeO,
	glfw.KeyP: key.CodeP,
	glfw.KeyQ: key.CodeQ,
	glfw.KeyR: key.CodeR,
	glfw.KeyS: key.CodeS,
	glfw.KeyT: key.CodeT,
	glfw.KeyU: key.CodeU,
	glfw.KeyV: key.CodeV,
	glfw.KeyW: key.CodeW,
	glfw.KeyX: key.CodeX,
	glfw.KeyY: key.CodeY,
	glfw.KeyZ: key.CodeZ,

	glfw.Key1: key.Code1,
	glfw.Key2: key.Code2,
	glfw.Key3: key.Code3,
	glfw.Key4: key.Code4,
	glfw.Key5: key.Code5,
	glfw.Key6: key.Code6,
	glfw.Key7: key.Code7,
	glfw.Key8: key.Code8,
	glfw.Key9: key.Code9,
	glfw.Key0: key.Code0,

	glfw.KeyEnter:     key.CodeReturnEnter,
	glfw.KeyEscape:    key.CodeEscape,
	glfw.KeyBackspace: key.CodeBackspace,
	glfw.KeyTab:       key.CodeTab,
	glfw.KeySpace:     key.CodeSpacebar,

	glfw.KeyRight: key.CodeRightArrow,
	glfw.KeyLeft:  key.CodeLeftArrow,
	glfw.KeyDown:  key.CodeDownArrow,
	glfw.KeyUp:    key.CodeUpArrow,

	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}

// GlfwKeyCode returns the key code for the given GLFW key,
// or [key.CodeUnknown] if it has none.
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	return glfwKeyCodes[kcode]
}
