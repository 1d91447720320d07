// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Queue is a FIFO event queue that window callbacks [Queue.Send]
// to and the event loop [Queue.Drain]s in batches. The zero value
// is an empty queue ready to use. Consecutive [Mouse] events are
// compressed into one by summing their motion, so a slow event loop
// does not fall behind a fast pointer.
type Queue struct {
	mu  sync.Mutex
	evs []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if mv, ok := ev.(*Mouse); ok && len(q.evs) > 0 {
		if last, ok := q.evs[len(q.evs)-1].(*Mouse); ok {
			last.DX += mv.DX
			last.DY += mv.DY
			return
		}
	}
	q.evs = append(q.evs, ev)
}

// Drain removes and returns all of the events currently in the queue,
// in order. It returns nil if the queue is empty.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.evs
	q.evs = nil
	return evs
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.evs)
}
