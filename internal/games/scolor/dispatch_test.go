package scolor

import (
	"context"
	"testing"

	"github.com/vovakirdan/scolor/internal/core"
)

func TestResizeUpdatesNormalization(t *testing.T) {
	g, _ := newTestGame(t)
	src := &scriptSource{}

	src.push(core.ResizeEvent{Display: core.MainDisplay, Width: 200, Height: 100})
	g.Dispatch(context.Background(), src, Blocking)
	if d := g.Display(); d.Width != 200 || d.Height != 100 {
		t.Fatalf("display = %+v, expected 200x100", d)
	}

	// (50, 45) is now (0.25, 0.45): not over Play
	src.push(core.PointerMoveEvent{X: 50, Y: 45})
	g.Dispatch(context.Background(), src, Blocking)
	if g.Title().PlayHovered {
		t.Error("position should be normalized against the new size")
	}

	src.push(core.PointerMoveEvent{X: 100, Y: 90})
	g.Dispatch(context.Background(), src, Blocking)
	if !g.Title().PlayHovered {
		t.Error("(100, 90) on 200x100 should hover Play")
	}
}

func TestForeignResizeIgnored(t *testing.T) {
	g, _ := newTestGame(t)
	src := &scriptSource{}

	// Blocking: the foreign resize is skipped and the next event handled
	src.push(
		core.ResizeEvent{Display: core.MainDisplay + 1, Width: 10, Height: 10},
		core.PointerMoveEvent{X: 50, Y: 45},
	)
	g.Dispatch(context.Background(), src, Blocking)

	if d := g.Display(); d.Width != 100 || d.Height != 50 {
		t.Errorf("foreign resize changed the display: %+v", d)
	}
	if !g.Title().PlayHovered {
		t.Error("blocking dispatch should continue past an ignored event")
	}
	if len(src.reads) != 2 {
		t.Errorf("expected 2 reads, got %d", len(src.reads))
	}
}

func TestPollingReturnsAfterIgnoredEvent(t *testing.T) {
	g, _ := newTestGame(t)
	startGame(t, g)

	src := &scriptSource{}
	src.push(
		core.ResizeEvent{Display: core.MainDisplay + 1, Width: 10, Height: 10},
		core.KeyDownEvent{Code: "left"},
	)
	g.Dispatch(context.Background(), src, Polling)

	if g.Round().Choice != None {
		t.Error("polling dispatch should return after one event")
	}
	if len(src.events) != 1 {
		t.Errorf("expected one event left queued, got %d", len(src.events))
	}
}

func TestPollingWithNothingQueued(t *testing.T) {
	g, _ := newTestGame(t)
	startGame(t, g)
	before := g.Round()

	src := &scriptSource{}
	g.Dispatch(context.Background(), src, Polling)

	if g.Mode() != ModeInGame || g.Round() != before {
		t.Error("an empty poll should change nothing")
	}
	if len(src.reads) != 1 || src.reads[0] {
		t.Errorf("expected a single non-blocking read, got %v", src.reads)
	}
}

// cancelledSource behaves like a blocking source whose context ended.
type cancelledSource struct{}

func (cancelledSource) Next(context.Context, bool) (core.Event, bool) { return nil, false }

func TestBlockingWithoutEventQuits(t *testing.T) {
	g, _ := newTestGame(t)
	g.Dispatch(context.Background(), cancelledSource{}, Blocking)

	if g.Mode() != ModeQuit {
		t.Errorf("mode = %v, expected quit", g.Mode())
	}
}

func TestZeroSizedDisplay(t *testing.T) {
	g, _ := newTestGame(t)
	src := &scriptSource{}

	src.push(
		core.ResizeEvent{Display: core.MainDisplay, Width: 0, Height: 0},
		core.PointerMoveEvent{X: 5, Y: 5},
	)
	g.Dispatch(context.Background(), src, Blocking)
	g.Dispatch(context.Background(), src, Blocking)

	if g.Title().PlayHovered {
		t.Error("an empty display normalizes to the origin, which is not over Play")
	}
}

func TestModePolicy(t *testing.T) {
	tests := map[Mode]Policy{
		ModeTitle:    Blocking,
		ModeInGame:   Polling,
		ModeGameOver: Blocking,
	}
	for m, want := range tests {
		if got := m.Policy(); got != want {
			t.Errorf("%v.Policy() = %v, expected %v", m, got, want)
		}
	}
}
