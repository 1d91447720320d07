// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the gloom window on desktop platforms
// using GLFW. Everything in it must be called on the main thread,
// except for [Window.Wake] and the [gpu.Surface] methods, which
// are called by the render goroutine once it owns the context.
package desktop

import (
	"log/slog"
	"time"

	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/events"
	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes GLFW. The calling goroutine must be locked to
// the main thread.
func Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Errorf("desktop: failed to initialize glfw: %w", err)
	}
	slog.Debug("desktop: glfw initialized", "version", glfw.GetVersionString())
	return nil
}

// Terminate releases all GLFW resources, including any open windows.
func Terminate() {
	glfw.Terminate()
}

// Options are the settings for a new [Window].
type Options struct {
	Title         string
	Width, Height int

	// GrabCursor hides the cursor and captures it in the window,
	// reporting unaccelerated motion where supported.
	GrabCursor bool

	// PollInterval is the longest time WaitEvents blocks.
	PollInterval time.Duration
}

// Window is a fixed size window with an OpenGL 4.1 core context.
// It implements [gpu.Surface] and [system.EventSource].
type Window struct {
	Glw     *glfw.Window
	Options Options

	// Event is the queue of events from the GLFW callbacks.
	Event events.Queue

	// last cursor position, for computing motion
	lastX, lastY float64
	hasLast      bool
}

var (
	_ gpu.Surface        = (*Window)(nil)
	_ system.EventSource = (*Window)(nil)
)

// NewWindow creates a new window. Its context is not current on
// any thread when NewWindow returns, so that it can be handed to
// the render goroutine with [gpu.NewPendingContext].
func NewWindow(opts Options) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, errors.Errorf("desktop: failed to create window: %w", err)
	}
	w := &Window{Glw: glw, Options: opts}

	glw.SetCloseCallback(w.closeEvent)
	glw.SetKeyCallback(w.keyEvent)
	glw.SetCursorPosCallback(w.cursorPosEvent)
	if opts.GrabCursor {
		glw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			glw.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	}

	glfw.DetachCurrentContext()
	return w, nil
}

// Destroy destroys the window.
func (w *Window) Destroy() {
	if w.Glw == nil {
		return
	}
	w.Glw.Destroy()
	w.Glw = nil
}

func (w *Window) MakeContextCurrent() {
	w.Glw.MakeContextCurrent()
}

func (w *Window) SwapBuffers() {
	w.Glw.SwapBuffers()
}

// SetSwapInterval sets the swap interval of the current context,
// which must be this window's.
func (w *Window) SetSwapInterval(n int) {
	glfw.SwapInterval(n)
}

// WaitEvents waits for events for up to Options.PollInterval,
// and returns the events received.
func (w *Window) WaitEvents() []events.Event {
	if w.Options.PollInterval > 0 {
		glfw.WaitEventsTimeout(w.Options.PollInterval.Seconds())
	} else {
		glfw.WaitEvents()
	}
	return w.Event.Drain()
}

func (w *Window) Wake() {
	glfw.PostEmptyEvent()
}
