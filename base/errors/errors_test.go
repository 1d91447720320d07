// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	err := Wrap(fs.ErrNotExist)
	assert.True(t, Is(err, fs.ErrNotExist))
	var e *Error
	assert.True(t, As(err, &e))
	assert.Contains(t, e.Caller, "errors_test.go")
	assert.True(t, strings.HasPrefix(err.Error(), fs.ErrNotExist.Error()))
}

func TestErrorf(t *testing.T) {
	err := Errorf("stage %d: %w", 2, fs.ErrPermission)
	assert.True(t, Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "stage 2")
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, fs.ErrClosed))
	assert.Equal(t, "a", Ignore1("a", fs.ErrClosed))
}
