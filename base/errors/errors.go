// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"fmt"
)

// New is the standard library [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is the standard library [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is the standard library [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is the standard library [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Error is an error with a base error and the
// file:line information of the place it was wrapped.
type Error struct {
	Base   error
	Caller string
}

// Wrap wraps the given error into an [*Error] that records
// the caller of Wrap. It returns nil if the given error is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Base: err, Caller: CallerInfo()}
}

// Errorf returns a new error with the given format and arguments,
// wrapped with caller information via [Wrap].
func Errorf(format string, a ...any) error {
	return &Error{Base: fmt.Errorf(format, a...), Caller: CallerInfo()}
}

func (e *Error) Error() string {
	if e.Caller == "" {
		return e.Base.Error()
	}
	return e.Base.Error() + " (" + e.Caller + ")"
}

// Unwrap returns the underlying base error.
func (e *Error) Unwrap() error {
	return e.Base
}
