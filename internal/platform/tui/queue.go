package tui

import (
	"sync"

	"github.com/vovakirdan/scolor/internal/core"
)

// eventQueue buffers terminal events for the game loop. Push never blocks.
// Consecutive pointer moves collapse into the latest one, and once limit
// events are queued further moves are dropped. Other events are always kept.
type eventQueue struct {
	mu     sync.Mutex
	events []core.Event
	limit  int
	ready  chan struct{} // holds a token after a push
}

func newEventQueue(limit int) *eventQueue {
	return &eventQueue{
		limit: limit,
		ready: make(chan struct{}, 1),
	}
}

// Push queues ev. Safe to call from any goroutine.
func (q *eventQueue) Push(ev core.Event) {
	q.mu.Lock()
	_, move := ev.(core.PointerMoveEvent)
	n := len(q.events)
	switch {
	case move && n > 0 && isMove(q.events[n-1]):
		q.events[n-1] = ev
	case move && n >= q.limit:
	default:
		q.events = append(q.events, ev)
	}
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Pop removes the oldest event, if any.
func (q *eventQueue) Pop() (core.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev, true
}

// Ready returns a channel that receives after events are pushed.
// A receive does not guarantee an event is still queued.
func (q *eventQueue) Ready() <-chan struct{} {
	return q.ready
}

// Len returns the number of queued events.
func (q *eventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

func isMove(ev core.Event) bool {
	_, ok := ev.(core.PointerMoveEvent)
	return ok
}
