// @lixen: #focus{event[queue,ring]}
package event

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Queue is a lock-free MPSC ring buffer between the race and the frame loop
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Drain/Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push claims a slot by CAS on tail, then publishes it
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // MUST be after write

		// Drop the oldest unread event when the ring wraps
		if head := q.head.Load(); next-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, next-parameter.EventQueueSize)
		}
		return
	}
}

// Emit pushes an event stamped with simulation time
func (q *Queue) Emit(et EventType, player int, payload any, now time.Time) {
	q.Push(GameEvent{Type: et, Player: player, Payload: payload, Time: now})
}

// Consume returns all pending events in FIFO order, nil when empty
func (q *Queue) Consume() []GameEvent {
	var out []GameEvent
	q.Drain(func(ev GameEvent) {
		out = append(out, ev)
	})
	return out
}

// Drain hands pending events to fn in FIFO order and advances head
// Stops at the first slot whose writer has not published yet
func (q *Queue) Drain(fn func(GameEvent)) int {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return 0
		}

		available := tail - head
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		var batch [parameter.EventQueueSize]GameEvent
		n := uint64(0)
		for ; n < available; n++ {
			idx := (head + n) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			batch[n] = q.events[idx]
		}

		if !q.head.CompareAndSwap(head, head+n) {
			continue // Producer advanced head on overflow, rescan
		}
		for i := uint64(0); i < n; i++ {
			q.published[(head+i)&parameter.EventBufferMask].Store(false)
			fn(batch[i])
		}
		return int(n)
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if diff := tail - head; diff < parameter.EventQueueSize {
		return int(diff)
	}
	return parameter.EventQueueSize
}
