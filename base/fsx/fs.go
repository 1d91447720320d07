// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"

	"cogentcore.org/gloom/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FirstExisting returns the first of the given file paths that
// exists, or "" if none of them do. Access errors are logged
// and the path is skipped.
func FirstExisting(paths ...string) string {
	for _, p := range paths {
		if errors.Log1(FileExists(p)) {
			return p
		}
	}
	return ""
}
