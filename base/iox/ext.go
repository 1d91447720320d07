// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Formats maps lower case file extensions (with the leading .)
// to the [DecoderFunc] used to read that format. It is filled in
// by [RegisterFormat].
var Formats = map[string]DecoderFunc{}

// RegisterFormat registers the given decoder for the given extensions.
func RegisterFormat(f DecoderFunc, exts ...string) {
	for _, ext := range exts {
		Formats[strings.ToLower(ext)] = f
	}
}

// OpenAny reads the given object from the given filename, choosing
// the decoder from the file extension through [Formats].
func OpenAny(v any, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := Formats[ext]
	if !ok {
		return fmt.Errorf("iox.OpenAny: no decoder registered for extension %q of file %q", ext, filename)
	}
	return Open(v, filename, f)
}
