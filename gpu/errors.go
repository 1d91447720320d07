// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/gloom/base/errors"
)

var (
	// ErrBuilderConsumed is returned when a [ShaderBuilder]
	// is used after it has already been linked.
	ErrBuilderConsumed = errors.New("gpu: ShaderBuilder already linked")

	// ErrNoStages is returned when linking a [ShaderBuilder]
	// without any shader stages.
	ErrNoStages = errors.New("gpu: ShaderBuilder has no shader stages to link")

	// ErrContextActivated is returned when activating a
	// [PendingContext] a second time.
	ErrContextActivated = errors.New("gpu: context has already been activated")
)

// CompileError is a shader stage compilation failure.
type CompileError struct {
	// Path is the source file, if the stage was loaded from a file.
	Path string

	// Type is the stage type.
	Type ShaderTypes

	// Log is the driver compiler's diagnostic text.
	Log string
}

func (e *CompileError) Error() string {
	src := "source"
	if e.Path != "" {
		src = e.Path
	}
	return fmt.Sprintf("gpu: failed to compile %s shader %s:\n%s", e.Type, src, e.Log)
}

// LinkError is a program link failure.
type LinkError struct {
	// Stages are the types of the stages that were linked.
	Stages []ShaderTypes

	// Log is the driver linker's diagnostic text.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: failed to link program with %v stages:\n%s", e.Stages, e.Log)
}

// ExtensionError is a shader file whose extension does not
// name a shader type.
type ExtensionError struct {
	Path string
	Ext  string
}

func (e *ExtensionError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("gpu: shader file %q has no extension to infer its type from", e.Path)
	}
	return fmt.Sprintf("gpu: shader file %q has unknown extension %q (expected .vert, .frag, .geom, .tcs or .tes)", e.Path, e.Ext)
}
