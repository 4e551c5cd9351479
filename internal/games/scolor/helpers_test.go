package scolor

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/scolor/internal/config"
	"github.com/vovakirdan/scolor/internal/core"
)

// manualClock only moves when Sleep is called or now is set directly.
type manualClock struct {
	now   int64
	slept time.Duration
}

func (c *manualClock) NowMillis() int64 { return c.now }

func (c *manualClock) Sleep(d time.Duration) {
	c.slept += d
	c.now += d.Milliseconds()
}

// scriptSource replays a fixed list of events. Once drained, blocking reads
// report a closed source and polling reads report nothing queued.
type scriptSource struct {
	events []core.Event
	reads  []bool // block flag of every Next call
}

func (s *scriptSource) Next(_ context.Context, block bool) (core.Event, bool) {
	s.reads = append(s.reads, block)
	if len(s.events) == 0 {
		if block {
			return core.QuitEvent{}, true
		}
		return nil, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func (s *scriptSource) push(evs ...core.Event) {
	s.events = append(s.events, evs...)
}

// recordingPresenter keeps every view it is given.
type recordingPresenter struct {
	views []View
}

func (p *recordingPresenter) Present(v View) {
	p.views = append(p.views, v)
}

func (p *recordingPresenter) modes() []Mode {
	var out []Mode
	for _, v := range p.views {
		if len(out) == 0 || out[len(out)-1] != v.Mode {
			out = append(out, v.Mode)
		}
	}
	return out
}

// newTestGame creates a game on a 100x50 display with a fixed seed.
func newTestGame(t *testing.T) (*Game, *manualClock) {
	t.Helper()

	clock := &manualClock{}
	rc := core.RuntimeConfig{ScreenW: 100, ScreenH: 50, Seed: 42}
	return New(config.DefaultConfig(), rc, clock, nil), clock
}

// newTestEngine creates an engine with the default difficulty curve.
func newTestEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)), config.DefaultConfig().Curve())
}

// keyFor returns the first key bound to c in the default bindings.
func keyFor(t *testing.T, g *Game, c Color) string {
	t.Helper()

	keys := g.Keys().Keys(c)
	if len(keys) == 0 {
		t.Fatalf("no key bound to %v", c)
	}
	return keys[0]
}

// startGame hovers and clicks the Play control.
func startGame(t *testing.T, g *Game) {
	t.Helper()

	src := &scriptSource{}
	src.push(core.PointerMoveEvent{X: 50, Y: 45}, core.PointerClickEvent{X: 50, Y: 45, Button: core.MouseLeft})
	g.Dispatch(context.Background(), src, Blocking)
	g.Dispatch(context.Background(), src, Blocking)
	if g.Mode() != ModeInGame {
		t.Fatalf("expected in-game after clicking Play, got %v", g.Mode())
	}
}
