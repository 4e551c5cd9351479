package scolor

import (
	"context"

	"github.com/vovakirdan/scolor/internal/core"
)

// Policy is how the dispatcher waits for the next event.
type Policy int

const (
	// Blocking waits until an event arrives. Used when nothing changes
	// between events (Title, GameOver).
	Blocking Policy = iota
	// Polling takes an event only if one is already queued. Used in game,
	// where the round must advance every frame.
	Polling
)

// EventSource is a pull-based source of input events.
//
// Next returns the next event. With block set it waits until one is
// available or ctx is done; otherwise it returns immediately. ok is false
// when no event was returned. A closed source yields core.QuitEvent.
type EventSource interface {
	Next(ctx context.Context, block bool) (ev core.Event, ok bool)
}

// Dispatch processes one event from src with the given policy and routes it
// to the active mode's handlers.
//
// Events that do not concern the game, such as a resize of another display,
// are skipped: under Blocking the wait continues, under Polling control
// returns. A blocking wait that ends without an event (ctx done) quits.
func (g *Game) Dispatch(ctx context.Context, src EventSource, policy Policy) {
	block := policy == Blocking
	for {
		ev, ok := src.Next(ctx, block)
		if !ok {
			if block {
				g.Quit()
			}
			return
		}
		if g.handle(ev) || !block {
			return
		}
	}
}

// handle routes a single event. It returns false for ignored events.
func (g *Game) handle(ev core.Event) bool {
	h := handlersFor(g.mode)

	switch ev := ev.(type) {
	case core.QuitEvent:
		g.Quit()
	case core.KeyDownEvent:
		h.KeyDown(g, ev.Code)
	case core.PointerMoveEvent:
		x, y := g.display.normalize(ev.X, ev.Y)
		h.Moved(g, x, y)
	case core.PointerClickEvent:
		x, y := g.display.normalize(ev.X, ev.Y)
		h.Pressed(g, x, y, ev.Button)
	case core.ResizeEvent:
		if ev.Display != g.display.ID {
			return false
		}
		g.display.Width = ev.Width
		g.display.Height = ev.Height
	default:
		return false
	}
	return true
}
