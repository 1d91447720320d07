// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"sync/atomic"

	"cogentcore.org/gloom/gpu"
)

// Surface is an offscreen [gpu.Surface] that counts presented frames.
type Surface struct {
	current  atomic.Int32
	swaps    atomic.Int64
	interval atomic.Int32

	// OnSwap, if set, is called at the start of every SwapBuffers.
	OnSwap func(frame int64)
}

var _ gpu.Surface = (*Surface)(nil)

func (s *Surface) MakeContextCurrent() {
	s.current.Add(1)
}

func (s *Surface) SwapBuffers() {
	n := s.swaps.Add(1)
	if s.OnSwap != nil {
		s.OnSwap(n)
	}
}

func (s *Surface) SetSwapInterval(n int) {
	s.interval.Store(int32(n))
}

// Swaps returns the number of presented frames.
func (s *Surface) Swaps() int64 {
	return s.swaps.Load()
}

// MadeCurrent returns the number of times the context was made current.
func (s *Surface) MadeCurrent() int {
	return int(s.current.Load())
}

// SwapInterval returns the last swap interval set.
func (s *Surface) SwapInterval() int {
	return int(s.interval.Load())
}
