// Package event provides the queue that carries contact events from
// detection (producers) to resolution (a single consumer per frame).
package event

import (
	"sync/atomic"

	"github.com/lixenwraith/collide/parameter"
)

// Queue is a lock-free MPSC ring buffer
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (the resolution pass)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue[T any] struct {
	events    [parameter.EventQueueSize]T
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push adds an event using lock-free CAS with published flags.
// Safe for concurrent producers. O(1) amortized
func (q *Queue[T]) Push(ev T) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Single-consumer design; checks published flags for safety
func (q *Queue[T]) Consume() []T {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.EventQueueSize {
			maxAvailable = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]T, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		if len(result) == 0 {
			return nil
		}

		if q.head.CompareAndSwap(currentHead, currentHead+uint64(len(result))) {
			return result
		}
	}
}

// Pending reports the number of unconsumed events
func (q *Queue[T]) Pending() int {
	head := q.head.Load()
	tail := q.tail.Load()
	n := tail - head
	if n > parameter.EventQueueSize {
		n = parameter.EventQueueSize
	}
	return int(n)
}
