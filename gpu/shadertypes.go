// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"path/filepath"
	"strings"
)

// ShaderTypes is a list of GPU shader (stage) types.
// The order is the order of the stages in the graphics pipeline.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	TessCtrlShader
	TessEvalShader
	GeometryShader
	FragmentShader
	ShaderTypesN
)

var shaderTypeNames = [...]string{"vertex", "tessellation control", "tessellation evaluation", "geometry", "fragment"}

func (typ ShaderTypes) String() string {
	if typ < 0 || typ >= ShaderTypesN {
		return "unknown"
	}
	return shaderTypeNames[typ]
}

// ShaderTypeExts maps shader source file extensions to shader types.
var ShaderTypeExts = map[string]ShaderTypes{
	".vert": VertexShader,
	".tcs":  TessCtrlShader,
	".tes":  TessEvalShader,
	".geom": GeometryShader,
	".frag": FragmentShader,
}

// ShaderTypeFromExt returns the shader type for the given
// file path based on its extension (see [ShaderTypeExts]).
func ShaderTypeFromExt(path string) (ShaderTypes, error) {
	ext := filepath.Ext(path)
	typ, ok := ShaderTypeExts[strings.ToLower(ext)]
	if !ok {
		return ShaderTypesN, &ExtensionError{Path: path, Ext: ext}
	}
	return typ, nil
}
