// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"testing"

	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/gpu/softgpu"
	"cogentcore.org/gloom/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shaders = "../../shaders/simple.frag,../../shaders/simple.vert"

func TestRunHeadless(t *testing.T) {
	assert.Equal(t, exitOK, run([]string{"-headless", "-frames", "3", "-shaders", shaders}))
	assert.Equal(t, exitOK, run([]string{"-headless", "-frames", "2", "-shaders", shaders, "-scene", "../../scene/testdata/quad.yaml"}))
}

func TestRunFailures(t *testing.T) {
	assert.Equal(t, exitFailure, run([]string{"-headless", "-frames", "1", "-shaders", "../../render/testdata/broken.vert," + shaders}))
	assert.Equal(t, exitFailure, run([]string{"-headless", "-frames", "1", "-shaders", "missing.frag"}))
	assert.Equal(t, exitFailure, run([]string{"-headless", "-frames", "1", "-shaders", shaders, "-scene", "missing.toml"}))
	assert.Equal(t, exitFailure, run([]string{"-width", "-1"}))
	assert.Equal(t, exitOK, run([]string{"-h"}))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitFailure, exitCode(errors.New("link failed")))
	assert.Equal(t, exitRenderDied, exitCode(&system.PanicError{Value: "boom"}))
	assert.Equal(t, exitRenderDied, exitCode(system.ErrRenderThreadDied))
}

// captureStderr redirects build diagnostics to a buffer
// for the rest of the test.
func captureStderr(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

func TestRunPrintsCompileLog(t *testing.T) {
	src, err := os.ReadFile("../../render/testdata/broken.vert")
	require.NoError(t, err)
	_, cerr := softgpu.New().CompileShader(gpu.VertexShader, string(src))
	require.Error(t, cerr)

	buf := captureStderr(t)
	assert.Equal(t, exitFailure, run([]string{"-headless", "-frames", "1", "-shaders", "../../render/testdata/broken.vert," + shaders}))
	assert.Contains(t, buf.String(), cerr.Error())
	assert.Contains(t, buf.String(), "broken.vert")
}

func TestReportBuildError(t *testing.T) {
	log := "0:3(1): error: syntax error\n0:4(2): error: undeclared `x'"
	var buf bytes.Buffer
	reportBuildError(&buf, &gpu.CompileError{Path: "broken.vert", Type: gpu.VertexShader, Log: log})
	assert.Contains(t, buf.String(), log, "multi-line driver logs are written as is")

	buf.Reset()
	reportBuildError(&buf, errors.Errorf("render: %w", &gpu.LinkError{Log: "error: no vertex shader"}))
	assert.Contains(t, buf.String(), "\nerror: no vertex shader")

	buf.Reset()
	reportBuildError(&buf, errors.New("render: no geometry"))
	reportBuildError(&buf, nil)
	assert.Empty(t, buf.String())
}
