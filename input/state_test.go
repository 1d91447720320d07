// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"math/rand"
	"sync"
	"testing"

	"cogentcore.org/gloom/events/key"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRecordKey(t *testing.T) {
	st := NewState()
	st.RecordKey(key.CodeA, true)
	st.RecordKey(key.CodeW, true)
	st.RecordKey(key.CodeA, true)
	assert.Equal(t, []key.Codes{key.CodeA, key.CodeW}, st.Keys())

	st.RecordKey(key.CodeD, false)
	assert.Equal(t, []key.Codes{key.CodeA, key.CodeW}, st.Keys())

	st.RecordKey(key.CodeA, false)
	assert.Equal(t, []key.Codes{key.CodeW}, st.Keys())
	assert.False(t, st.IsPressed(key.CodeA))
	assert.True(t, st.IsPressed(key.CodeW))

	st.RecordKey(key.CodeUnknown, true)
	assert.Equal(t, []key.Codes{key.CodeW}, st.Keys())
}

func TestKeysIsCopy(t *testing.T) {
	st := NewState()
	st.RecordKey(key.CodeA, true)
	ks := st.Keys()
	ks[0] = key.CodeZ
	assert.Equal(t, []key.Codes{key.CodeA}, st.Keys())
}

// TestRecordKeyRandom checks that for any sequence of presses and
// releases the set has no duplicates and agrees with a reference model.
func TestRecordKeyRandom(t *testing.T) {
	codes := []key.Codes{key.CodeA, key.CodeD, key.CodeS, key.CodeW, key.CodeQ}
	rnd := rand.New(rand.NewSource(1))
	st := NewState()
	model := map[key.Codes]bool{}
	for i := 0; i < 2000; i++ {
		c := codes[rnd.Intn(len(codes))]
		pressed := rnd.Intn(2) == 0
		st.RecordKey(c, pressed)
		model[c] = pressed

		ks := st.Keys()
		seen := map[key.Codes]bool{}
		for _, k := range ks {
			assert.False(t, seen[k], "duplicate key %v", k)
			seen[k] = true
		}
		for _, c := range codes {
			assert.Equal(t, model[c], seen[c], "key %v after step %d", c, i)
		}
	}
}

func TestSnapshotAndClearDelta(t *testing.T) {
	st := NewState()
	st.AddDelta(1, 2)
	st.AddDelta(3, -1)
	dx, dy := st.SnapshotAndClearDelta()
	assert.Equal(t, float32(4), dx)
	assert.Equal(t, float32(1), dy)

	dx, dy = st.SnapshotAndClearDelta()
	assert.Equal(t, float32(0), dx)
	assert.Equal(t, float32(0), dy)
}

func TestDeltaConcurrent(t *testing.T) {
	st := NewState()
	var wg sync.WaitGroup
	var total float32
	var mu sync.Mutex
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			st.AddDelta(1, 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			dx, _ := st.SnapshotAndClearDelta()
			mu.Lock()
			total += dx
			mu.Unlock()
		}
	}()
	wg.Wait()
	dx, _ := st.SnapshotAndClearDelta()
	total += dx
	assert.Equal(t, float32(1000), total, "no motion may be lost or counted twice")
}

func TestMarkUnhealthy(t *testing.T) {
	st := NewState()
	assert.True(t, st.Healthy())

	var wg sync.WaitGroup
	var mu sync.Mutex
	transitions := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if st.MarkUnhealthy() {
				mu.Lock()
				transitions++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, transitions)
	assert.False(t, st.Healthy())
	assert.False(t, st.MarkUnhealthy())
	assert.False(t, st.Healthy())
}

func TestLockedRecovers(t *testing.T) {
	st := NewState()
	st.AddDelta(2, 3)
	ran := false
	assert.NotPanics(t, func() {
		locked(&st.deltaMu, "test", func() {
			st.delta = mgl32.Vec2{}
			panic("boom")
		})
		ran = true
	})
	assert.True(t, ran, "the caller continues after a failed section")
	if assert.True(t, st.deltaMu.TryLock(), "the lock is released") {
		st.deltaMu.Unlock()
	}

	// the state stays usable
	st.AddDelta(1, 1)
	dx, dy := st.SnapshotAndClearDelta()
	assert.Equal(t, float32(1), dx)
	assert.Equal(t, float32(1), dy)

	locked(&st.keysMu, "test", func() { panic("boom") })
	st.RecordKey(key.CodeA, true)
	assert.Equal(t, []key.Codes{key.CodeA}, st.Keys())
}
