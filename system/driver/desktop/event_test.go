// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"testing"

	"cogentcore.org/gloom/events"
	"cogentcore.org/gloom/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow() *Window {
	return &Window{}
}

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeA, GlfwKeyCode(glfw.KeyA))
	assert.Equal(t, key.CodeEscape, GlfwKeyCode(glfw.KeyEscape))
	assert.Equal(t, key.CodeLeftShift, GlfwKeyCode(glfw.KeyLeftShift))
	assert.Equal(t, key.CodeUpArrow, GlfwKeyCode(glfw.KeyUp))
	assert.Equal(t, key.CodeUnknown, GlfwKeyCode(glfw.KeyF1))
	assert.Equal(t, key.CodeUnknown, GlfwKeyCode(glfw.KeyUnknown))
}

func TestKeyEvents(t *testing.T) {
	w := newTestWindow()
	w.keyEvent(nil, glfw.KeyW, 0, glfw.Press, 0)
	w.keyEvent(nil, glfw.KeyW, 0, glfw.Repeat, 0)
	w.keyEvent(nil, glfw.KeyF1, 0, glfw.Press, 0)
	w.keyEvent(nil, glfw.KeyW, 0, glfw.Release, 0)
	w.closeEvent(nil)

	evs := w.Event.Drain()
	require.Len(t, evs, 4)
	assert.Equal(t, events.NewKey(key.CodeW, true), evs[0])
	assert.Equal(t, events.KeyDown, evs[1].Type())
	assert.Equal(t, events.NewKey(key.CodeW, false), evs[2])
	assert.Equal(t, events.Close, evs[3].Type())
}

func TestCursorMotion(t *testing.T) {
	w := newTestWindow()
	w.cursorPosEvent(nil, 100, 100)
	w.cursorPosEvent(nil, 103, 98)
	w.cursorPosEvent(nil, 103, 98)
	evs := w.Event.Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, &events.Mouse{DX: 3, DY: -2}, evs[0])

	w.cursorPosEvent(nil, 100, 100)
	w.cursorPosEvent(nil, 90, 110)
	evs = w.Event.Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, &events.Mouse{DX: -13, DY: 12}, evs[0])
}
