// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the render loop, which runs on its own
// goroutine and draws the scene every frame using the latest
// shared input state.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/camera"
	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws frames from the shared input state.
type Renderer struct {
	Config Config

	input  *input.State
	ctrl   *camera.Controller
	frames atomic.Int64
}

// New returns a new renderer reading from the given input state.
func New(cfg Config, in *input.State) *Renderer {
	cm := camera.New(float32(cfg.Width)/float32(cfg.Height), cfg.FOV, cfg.Near, cfg.Far)
	return &Renderer{
		Config: cfg,
		input:  in,
		ctrl:   camera.NewController(cm, cfg.RotateSpeed, cfg.MoveSpeed, cfg.PointerSensitivity),
	}
}

// Camera returns the camera. It must only be used from the render
// goroutine while Run is running.
func (r *Renderer) Camera() *camera.Camera {
	return r.ctrl.Camera
}

// Frames returns the number of frames presented so far.
func (r *Renderer) Frames() int64 {
	return r.frames.Load()
}

// uniforms are the uniforms set by the render loop.
type uniforms struct {
	time, screen, camera gpu.Uniform
}

// Run activates the given context on the calling goroutine's thread
// and renders frames until ctx is done or Config.MaxFrames have been
// presented, in which case it returns nil. It returns an error if
// setup fails. Panics are not recovered.
func (r *Renderer) Run(ctx context.Context, pc *gpu.PendingContext, newDevice func() (gpu.Device, error)) error {
	cx, err := pc.Activate(newDevice)
	if err != nil {
		return errors.Errorf("render: failed to activate context: %w", err)
	}
	dev := cx.Device()
	slog.Info("render: graphics device", "info", dev.Info().String())
	cx.SetVSync(r.Config.VSync)
	dev.Configure(gpu.DefaultState())

	if r.Config.Geometry == nil {
		return errors.New("render: no geometry")
	}
	mesh, err := dev.NewMesh(r.Config.Geometry)
	if err != nil {
		return errors.Wrap(err)
	}
	slog.Debug("render: uploaded mesh", "triangles", r.Config.Geometry.NumTriangles())

	b := gpu.NewShaderBuilder(dev)
	for _, fn := range r.Config.Shaders {
		b = b.AttachFile(fn)
	}
	prog, err := b.Link()
	if err != nil {
		return err
	}
	defer prog.Delete()

	un := uniforms{
		time:   prog.Uniform("iTime"),
		screen: prog.Uniform("screenDims"),
		camera: prog.Uniform("camera"),
	}
	for _, u := range []gpu.Uniform{un.time, un.screen, un.camera} {
		if !u.Found() {
			slog.Debug("render: uniform not used by shaders", "name", u.Name())
		}
	}
	un.screen.SetVector2(mgl32.Vec2{float32(r.Config.Width), float32(r.Config.Height)})

	var tick <-chan time.Time
	if r.Config.MaxFPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.Config.MaxFPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	start := r.Config.now()
	last := start
	statStart, statFrames := start, 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("render: stopped", "frames", r.Frames())
			return nil
		default:
		}
		if r.Config.MaxFrames > 0 && r.Frames() >= int64(r.Config.MaxFrames) {
			slog.Info("render: frame limit reached", "frames", r.Frames())
			return nil
		}

		now := r.Config.now()
		elapsed := float32(now.Sub(start).Seconds())
		dt := float32(now.Sub(last).Seconds())
		last = now
		r.frame(cx, prog, mesh, un, elapsed, dt)

		statFrames++
		if si := r.Config.StatsInterval; si > 0 && now.Sub(statStart) >= si {
			fps := float64(statFrames) / now.Sub(statStart).Seconds()
			yaw, pitch := r.ctrl.Camera.Angles()
			slog.Debug("render: frame rate", "fps", fmt.Sprintf("%.0f", fps), "yaw", yaw, "pitch", pitch)
			statStart, statFrames = now, 0
		}

		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
	}
}

// frame draws and presents one frame.
func (r *Renderer) frame(cx *gpu.Context, prog *gpu.Program, mesh gpu.Mesh, un uniforms, elapsed, dt float32) {
	keys := r.input.Keys()
	dx, dy := r.input.SnapshotAndClearDelta()
	r.ctrl.Update(keys, dx, dy, dt)

	un.time.SetFloat32(elapsed)
	un.camera.SetMatrix4(r.ctrl.Camera.Matrix(), false)

	dev := cx.Device()
	dev.Clear(r.Config.ClearColor)
	prog.Activate()
	dev.DrawIndexed(mesh)
	cx.SwapBuffers()
	r.frames.Add(1)
}
