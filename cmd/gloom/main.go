// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gloom opens a window and renders a scene with the given
// GLSL shaders, with a free-look camera driven by the keyboard
// and pointer. Rendering runs on its own goroutine, while the main
// thread handles window events.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/base/logx"
	"cogentcore.org/gloom/config"
	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/input"
	"cogentcore.org/gloom/render"
	"cogentcore.org/gloom/scene"
	"cogentcore.org/gloom/system"
)

func init() {
	// must lock main thread for glfw
	runtime.LockOSThread()
}

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitRenderDied = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logx.SetDefaultLogger()
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stdout)
		return exitOK
	}
	if errors.Log(err) != nil {
		return exitFailure
	}
	logx.UserLevel = cfg.LogLevel()

	geom, err := scene.Load(cfg.Scene)
	if errors.Log(err) != nil {
		return exitFailure
	}
	in := input.NewState()
	r := render.New(cfg.Render(geom), in)
	if cfg.Headless {
		err = runHeadless(r)
	} else {
		err = runWindow(cfg, r, in)
	}
	reportBuildError(stderr, err)
	return exitCode(err)
}

// stderr is where shader build diagnostics are written.
var stderr io.Writer = os.Stderr

// reportBuildError writes the full text of a shader compile or link
// error to w, with the driver diagnostic as is, one line per message.
func reportBuildError(w io.Writer, err error) {
	var ce *gpu.CompileError
	var le *gpu.LinkError
	if errors.As(err, &ce) || errors.As(err, &le) {
		fmt.Fprintln(w, err.Error())
	}
}

// exitCode returns the process exit code for the given result.
// A render goroutine panic is exit code 2, any other error 1.
func exitCode(err error) int {
	var pe *system.PanicError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &pe), errors.Is(err, system.ErrRenderThreadDied):
		return exitRenderDied
	default:
		return exitFailure
	}
}
