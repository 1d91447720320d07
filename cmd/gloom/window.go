// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/gloom/config"
	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/gpu/glgpu"
	"cogentcore.org/gloom/input"
	"cogentcore.org/gloom/render"
	"cogentcore.org/gloom/system"
	"cogentcore.org/gloom/system/driver/desktop"
)

// stopTimeout is how long to wait for the render goroutine
// to stop after the event loop exits.
const stopTimeout = 5 * time.Second

// runWindow opens the window, starts the render goroutine and runs
// the event loop on the main thread until the window is closed or
// the render goroutine fails.
func runWindow(cfg *config.Config, r *render.Renderer, in *input.State) error {
	if err := desktop.Init(); err != nil {
		slog.Error("gloom: no display", "err", err)
		return err
	}
	defer desktop.Terminate()

	win, err := desktop.NewWindow(desktop.Options{
		Title:        cfg.Title,
		Width:        cfg.Width,
		Height:       cfg.Height,
		GrabCursor:   cfg.GrabCursor,
		PollInterval: time.Duration(cfg.PollInterval),
	})
	if err != nil {
		slog.Error("gloom: failed to open window", "err", err)
		return err
	}
	defer win.Destroy()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pc := gpu.NewPendingContext(win)
	done := system.Go(func() error { return r.Run(ctx, pc, glgpu.New) })

	disp := system.NewDispatcher(in)
	disp.QuitKeys = cfg.QuitKeys
	supervised := make(chan error, 1)
	go func() {
		err := system.Supervise(done, in, win)
		if err == nil {
			// finished cleanly after the frame limit
			disp.Stop()
			win.Wake()
		}
		supervised <- err
	}()

	loopErr := disp.Run(win)
	cancel()
	select {
	case err := <-supervised:
		if err != nil {
			return err
		}
	case <-time.After(stopTimeout):
		slog.Error("gloom: render thread did not stop", "timeout", stopTimeout)
		return system.ErrRenderThreadDied
	}
	return loopErr
}
