// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"

	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/gpu/softgpu"
	"cogentcore.org/gloom/render"
	"cogentcore.org/gloom/system"
)

// runHeadless renders the configured number of frames offscreen
// with the software device.
func runHeadless(r *render.Renderer) error {
	sf := &softgpu.Surface{}
	pc := gpu.NewPendingContext(sf)
	err := <-system.Go(func() error {
		return r.Run(context.Background(), pc, func() (gpu.Device, error) { return softgpu.New(), nil })
	})
	if err != nil {
		slog.Error("gloom: headless render failed", "err", err)
		return err
	}
	slog.Info("gloom: headless render finished", "frames", r.Frames(), "swaps", sf.Swaps())
	return nil
}
