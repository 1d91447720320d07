// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/input"
)

// PanicError is a panic recovered from a goroutine started by [Go].
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the stack of the panicking goroutine.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

var errNoResult = errors.New("system: goroutine exited without a result")

// Go runs f on a new goroutine and returns a channel that receives
// its result exactly once and is then closed. A panic in f is
// delivered as a [*PanicError].
func Go(f func() error) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- &PanicError{Value: r, Stack: debug.Stack()}
			}
			close(ch)
		}()
		ch <- f()
	}()
	return ch
}

// Supervise waits for the result on done, as returned by [Go].
// If it is an error, it logs it, marks the input state unhealthy
// and wakes the event source so that the event loop sees it.
// It returns the result.
func Supervise(done <-chan error, in *input.State, src EventSource) error {
	err, ok := <-done
	if !ok {
		err = errNoResult
	}
	if err == nil {
		slog.Info("system: render thread finished")
		return nil
	}
	var pe *PanicError
	if errors.As(err, &pe) {
		slog.Error("system: render thread panicked", "panic", pe.Value, "stack", string(pe.Stack))
	} else {
		slog.Error("system: render thread failed", "err", err)
	}
	if in.MarkUnhealthy() {
		src.Wake()
	}
	return err
}
