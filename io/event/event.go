// SPDX-License-Identifier: Unlicense OR MIT

/*
Package event contains the event model of the dispatch pipeline.

An Event decides for itself how it travels the drawable tree: its
Pass method is re-evaluated at every level against the immediate
children's rectangles and returns, per child, the copy that child
receives, or nil to withhold it. Pointer events implement hit
testing there; keyboard and tick events broadcast.
*/
package event

import "seabird.dev/ui/f32"

// Event is a value travelling the drawable tree.
type Event interface {
	// Pass returns, for each child rectangle (in the current node's
	// local space), the event forwarded to that child or nil. The
	// returned slice must have one entry per child.
	Pass(children []f32.Rectangle) []Event
}

// Broadcast forwards e unchanged to every one of n children.
func Broadcast(e Event, n int) []Event {
	out := make([]Event, n)
	for i := range out {
		out[i] = e
	}
	return out
}

// TickEvent is the per-frame clock signal, broadcast to the whole
// tree before the queue drain.
type TickEvent struct{}

func (t TickEvent) Pass(children []f32.Rectangle) []Event {
	return Broadcast(t, len(children))
}

// Queue is the pending-event FIFO. It has a single consumer, the
// dispatcher, and is drained completely once per tick; producers
// are handlers running synchronously on the same thread, so no
// locking is involved.
type Queue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Pop removes and returns the oldest event.
func (q *Queue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
