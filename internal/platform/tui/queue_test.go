package tui

import (
	"testing"

	"github.com/vovakirdan/scolor/internal/core"
)

func drain(q *eventQueue) []core.Event {
	var out []core.Event
	for {
		ev, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestEventQueueCollapsesMoves(t *testing.T) {
	q := newEventQueue(8)
	for i := range 300 {
		q.Push(core.PointerMoveEvent{X: i, Y: 1})
	}

	got := drain(q)
	if len(got) != 1 || got[0] != (core.PointerMoveEvent{X: 299, Y: 1}) {
		t.Errorf("queued = %#v, want only the last move", got)
	}
}

func TestEventQueueKeepsOrderAroundClicks(t *testing.T) {
	q := newEventQueue(8)
	q.Push(core.PointerMoveEvent{X: 1, Y: 1})
	q.Push(core.PointerMoveEvent{X: 2, Y: 2})
	q.Push(core.PointerClickEvent{X: 2, Y: 2, Button: core.MouseLeft})
	q.Push(core.PointerMoveEvent{X: 3, Y: 3})
	q.Push(core.QuitEvent{})

	want := []core.Event{
		core.PointerMoveEvent{X: 2, Y: 2},
		core.PointerClickEvent{X: 2, Y: 2, Button: core.MouseLeft},
		core.PointerMoveEvent{X: 3, Y: 3},
		core.QuitEvent{},
	}
	got := drain(q)
	if len(got) != len(want) {
		t.Fatalf("queued %d events, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestEventQueueFullDropsOnlyMoves(t *testing.T) {
	q := newEventQueue(2)
	q.Push(core.KeyDownEvent{Code: "h"})
	q.Push(core.KeyDownEvent{Code: "j"})

	q.Push(core.PointerMoveEvent{X: 1, Y: 1})
	if q.Len() != 2 {
		t.Errorf("move on a full queue should be dropped, Len = %d", q.Len())
	}

	q.Push(core.QuitEvent{})
	got := drain(q)
	if len(got) != 3 || got[2] != (core.QuitEvent{}) {
		t.Errorf("quit must be queued on a full queue, got %#v", got)
	}
}

func TestEventQueueReady(t *testing.T) {
	q := newEventQueue(2)
	select {
	case <-q.Ready():
		t.Fatal("empty queue should not be ready")
	default:
	}

	q.Push(core.KeyDownEvent{Code: "l"})
	q.Push(core.KeyDownEvent{Code: "h"})
	select {
	case <-q.Ready():
	default:
		t.Fatal("queue should be ready after a push")
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
}
