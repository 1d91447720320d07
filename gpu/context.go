// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"runtime"
	"sync/atomic"
)

// Surface is the window side of a graphics context,
// provided by the window system driver.
type Surface interface {
	// MakeContextCurrent makes the context current on the calling thread.
	MakeContextCurrent()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// SetSwapInterval sets the number of screen updates to wait for
	// before swapping: 1 is vertical sync, 0 is none. It applies to
	// the context current on the calling thread.
	SetSwapInterval(interval int)
}

// PendingContext is a graphics context that has not yet been
// made current on any thread. It can be activated exactly once,
// which moves it to the thread of the activating goroutine.
type PendingContext struct {
	surface   Surface
	activated atomic.Bool
}

// NewPendingContext returns a new [PendingContext] for the given surface.
// The surface's context must not be current on any thread.
func NewPendingContext(sf Surface) *PendingContext {
	return &PendingContext{surface: sf}
}

// Activate locks the calling goroutine to its OS thread, makes the
// context current on it, and creates the [Device] with newDevice.
// The goroutine stays locked to the thread for the rest of its life,
// and the returned [Context] and its Device must only be used from it.
// Activate succeeds at most once; later calls return [ErrContextActivated].
func (pc *PendingContext) Activate(newDevice func() (Device, error)) (*Context, error) {
	if !pc.activated.CompareAndSwap(false, true) {
		return nil, ErrContextActivated
	}
	runtime.LockOSThread()
	pc.surface.MakeContextCurrent()
	dev, err := newDevice()
	if err != nil {
		return nil, err
	}
	return &Context{surface: pc.surface, dev: dev}, nil
}

// Context is an activated graphics context, owned by the
// goroutine that activated it.
type Context struct {
	surface Surface
	dev     Device
}

// Device returns the device of the context.
func (cx *Context) Device() Device {
	return cx.dev
}

// SwapBuffers presents the frame.
func (cx *Context) SwapBuffers() {
	cx.surface.SwapBuffers()
}

// SetVSync turns vertical sync on or off.
func (cx *Context) SetVSync(on bool) {
	if on {
		cx.surface.SetSwapInterval(1)
	} else {
		cx.surface.SetSwapInterval(0)
	}
}
