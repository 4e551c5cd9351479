package scolor

import (
	"context"
	"testing"

	"github.com/vovakirdan/scolor/internal/core"
)

func TestNewGameStartsOnTitle(t *testing.T) {
	g, _ := newTestGame(t)

	if g.Mode() != ModeTitle {
		t.Errorf("mode = %v, expected title", g.Mode())
	}
	if g.Title().PlayHovered {
		t.Error("play should not start hovered")
	}
	d := g.Display()
	if d.ID != core.MainDisplay || d.Width != 100 || d.Height != 50 {
		t.Errorf("display = %+v, expected main 100x50", d)
	}
}

func TestTitleHoverAndPlay(t *testing.T) {
	g, _ := newTestGame(t)
	src := &scriptSource{}
	ctx := context.Background()

	// (50, 45) on 100x50 is (0.5, 0.9)
	src.push(core.PointerMoveEvent{X: 50, Y: 45})
	g.Dispatch(ctx, src, Blocking)
	if !g.Title().PlayHovered {
		t.Fatal("pointer at (0.5, 0.9) should hover Play")
	}

	// (10, 45) is (0.1, 0.9)
	src.push(core.PointerMoveEvent{X: 10, Y: 45})
	g.Dispatch(ctx, src, Blocking)
	if g.Title().PlayHovered {
		t.Fatal("pointer at (0.1, 0.9) should not hover Play")
	}

	// Clicking while not hovered does nothing
	src.push(core.PointerClickEvent{X: 10, Y: 45, Button: core.MouseLeft})
	g.Dispatch(ctx, src, Blocking)
	if g.Mode() != ModeTitle {
		t.Fatalf("click off Play should stay on title, got %v", g.Mode())
	}

	src.push(core.PointerMoveEvent{X: 50, Y: 45}, core.PointerClickEvent{X: 50, Y: 45, Button: core.MouseRight})
	g.Dispatch(ctx, src, Blocking)
	g.Dispatch(ctx, src, Blocking)
	if g.Mode() != ModeInGame {
		t.Fatalf("click on hovered Play should start the game, got %v", g.Mode())
	}
	if g.Title().PlayHovered {
		t.Error("hover flag should be cleared when the game starts")
	}

	s := g.Round()
	if s.Score != 0 || s.Duration != 2000 || s.Background == s.Current {
		t.Errorf("unexpected first round %+v", s)
	}
}

func TestTitleIgnoresKeys(t *testing.T) {
	g, _ := newTestGame(t)
	src := &scriptSource{}
	src.push(core.KeyDownEvent{Code: "left"}, core.KeyDownEvent{Code: "enter"})

	g.Dispatch(context.Background(), src, Blocking)
	g.Dispatch(context.Background(), src, Blocking)

	if g.Mode() != ModeTitle || g.Title().PlayHovered {
		t.Errorf("keys should be ignored on the title screen, mode=%v", g.Mode())
	}
}

func TestInGameKeysSelectColors(t *testing.T) {
	g, _ := newTestGame(t)
	startGame(t, g)

	tests := []struct {
		code     string
		expected Color
	}{
		{"left", Yellow},
		{"down", Magenta},
		{"right", Green},
		{"h", Yellow},
		{"j", Magenta},
		{"l", Green},
		{"x", Green}, // unbound: previous choice kept
		{"up", Green},
	}

	src := &scriptSource{}
	for _, tc := range tests {
		src.push(core.KeyDownEvent{Code: tc.code})
		g.Dispatch(context.Background(), src, Polling)
		if got := g.Round().Choice; got != tc.expected {
			t.Errorf("after %q choice = %v, expected %v", tc.code, got, tc.expected)
		}
	}
}

func TestInGameIgnoresPointer(t *testing.T) {
	g, _ := newTestGame(t)
	startGame(t, g)
	before := g.Round()

	src := &scriptSource{}
	src.push(core.PointerMoveEvent{X: 1, Y: 1}, core.PointerClickEvent{X: 1, Y: 1, Button: core.MouseLeft})
	g.Dispatch(context.Background(), src, Polling)
	g.Dispatch(context.Background(), src, Polling)

	if g.Mode() != ModeInGame || g.Round() != before {
		t.Errorf("pointer events should not affect the round")
	}
}

func TestFrameWinsAndLoses(t *testing.T) {
	g, clock := newTestGame(t)
	startGame(t, g)

	// Win the first round
	src := &scriptSource{}
	src.push(core.KeyDownEvent{Code: keyFor(t, g, g.Round().Current)})
	g.Dispatch(context.Background(), src, Polling)

	clock.now = 1000
	g.Frame()
	if p := g.Round().Progress; p != 0.5 {
		t.Errorf("progress = %v, expected 0.5", p)
	}

	clock.now = 2001
	g.Frame()
	if g.Mode() != ModeInGame || g.Round().Score != 1 || g.Round().Duration != 1900 {
		t.Fatalf("expected a won round, mode=%v round=%+v", g.Mode(), g.Round())
	}

	// Let the second round expire without a selection
	clock.now = 2001 + 1900
	g.Frame()
	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, expected game over", g.Mode())
	}
	if g.FinalScore() != 1 {
		t.Errorf("final score = %d, expected 1", g.FinalScore())
	}
	if v := g.View(); v.Mode != ModeGameOver || v.Score != 1 {
		t.Errorf("game over view = %+v", v)
	}

	// Frame outside the game does nothing
	clock.now += 10000
	g.Frame()
	if g.Mode() != ModeGameOver {
		t.Errorf("Frame should be a no-op in game over, mode=%v", g.Mode())
	}
}

func TestLoseWithoutSelection(t *testing.T) {
	g, clock := newTestGame(t)
	startGame(t, g)

	clock.now = 2001
	g.Frame()

	if g.Mode() != ModeGameOver || g.FinalScore() != 0 {
		t.Errorf("expected game over with score 0, got mode=%v score=%d", g.Mode(), g.FinalScore())
	}
}

func TestGameOverClickReturnsToTitle(t *testing.T) {
	g, clock := newTestGame(t)
	startGame(t, g)
	clock.now = 5000
	g.Frame()

	src := &scriptSource{}
	src.push(core.KeyDownEvent{Code: "left"}, core.PointerMoveEvent{X: 50, Y: 45}, core.PointerClickEvent{X: 0, Y: 0, Button: core.MouseMiddle})

	g.Dispatch(context.Background(), src, Blocking)
	g.Dispatch(context.Background(), src, Blocking)
	if g.Mode() != ModeGameOver {
		t.Fatalf("keys and moves should not leave game over, got %v", g.Mode())
	}

	g.Dispatch(context.Background(), src, Blocking)
	if g.Mode() != ModeTitle {
		t.Fatalf("any click should return to title, got %v", g.Mode())
	}
	if g.Title().PlayHovered {
		t.Error("pointer moves during game over must not touch the title state")
	}

	// A new game starts from zero
	startGame(t, g)
	if s := g.Round(); s.Score != 0 || s.StartTime != 5000 {
		t.Errorf("new game round = %+v", s)
	}
}

func TestQuitFromEveryMode(t *testing.T) {
	setups := map[string]func(t *testing.T, g *Game, c *manualClock){
		"title": func(*testing.T, *Game, *manualClock) {},
		"in-game": func(t *testing.T, g *Game, _ *manualClock) {
			startGame(t, g)
		},
		"game-over": func(t *testing.T, g *Game, c *manualClock) {
			startGame(t, g)
			c.now = 3000
			g.Frame()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			g, clock := newTestGame(t)
			setup(t, g, clock)
			mode := g.Mode()

			src := &scriptSource{}
			src.push(core.QuitEvent{})
			g.Dispatch(context.Background(), src, mode.Policy())
			if g.Mode() != ModeQuit {
				t.Fatalf("mode = %v, expected quit", g.Mode())
			}

			// Quit is terminal
			src.push(core.PointerMoveEvent{X: 50, Y: 45}, core.PointerClickEvent{X: 50, Y: 45})
			g.Dispatch(context.Background(), src, Blocking)
			g.Dispatch(context.Background(), src, Blocking)
			g.Quit()
			if g.Mode() != ModeQuit {
				t.Errorf("quit should be terminal, got %v", g.Mode())
			}
		})
	}
}

func TestViewPerMode(t *testing.T) {
	g, _ := newTestGame(t)

	src := &scriptSource{}
	src.push(core.PointerMoveEvent{X: 50, Y: 45})
	g.Dispatch(context.Background(), src, Blocking)

	v := g.View()
	if v.Mode != ModeTitle || !v.PlayHovered || v.Current != None || v.Choice != None {
		t.Errorf("title view = %+v", v)
	}

	startGame(t, g)
	s := g.Round()
	v = g.View()
	if v.Mode != ModeInGame || v.Background != s.Background || v.Current != s.Current ||
		v.Choice != None || v.Progress != 1 || v.PlayHovered {
		t.Errorf("in-game view = %+v, round = %+v", v, s)
	}
	if v.Display != g.Display() {
		t.Errorf("view display = %+v, expected %+v", v.Display, g.Display())
	}
}
