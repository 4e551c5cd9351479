package scolor

import "github.com/vovakirdan/scolor/internal/core"

// ModeHandlers is the per-mode behavior of the game. Pointer coordinates are
// normalized to [0,1]x[0,1] of the display. Handlers only mutate the state
// of their own mode or request a transition through the Game.
type ModeHandlers interface {
	KeyDown(g *Game, code string)
	Pressed(g *Game, x, y float64, button core.MouseButton)
	Moved(g *Game, x, y float64)

	// Describe fills the mode-specific fields of a view snapshot.
	Describe(g *Game, v *View)
}

// noopHandlers ignores everything. Modes embed it and override what they use.
type noopHandlers struct{}

func (noopHandlers) KeyDown(*Game, string)                             {}
func (noopHandlers) Pressed(*Game, float64, float64, core.MouseButton) {}
func (noopHandlers) Moved(*Game, float64, float64)                     {}
func (noopHandlers) Describe(*Game, *View)                             {}

// titleHandlers drive the title screen: hover the Play control, click it.
type titleHandlers struct{ noopHandlers }

func (titleHandlers) Moved(g *Game, x, y float64) {
	g.title.PlayHovered = g.hover.Contains(x, y)
}

func (titleHandlers) Pressed(g *Game, _, _ float64, _ core.MouseButton) {
	if !g.title.PlayHovered {
		return
	}
	g.title.PlayHovered = false
	g.startGame()
}

func (titleHandlers) Describe(g *Game, v *View) {
	v.PlayHovered = g.title.PlayHovered
}

// inGameHandlers map the color keys to selections.
type inGameHandlers struct{ noopHandlers }

func (inGameHandlers) KeyDown(g *Game, code string) {
	if c, ok := g.keys.Lookup(code); ok {
		g.engine.Select(c)
	}
}

func (inGameHandlers) Describe(g *Game, v *View) {
	s := g.engine.State()
	v.Background = s.Background
	v.Current = s.Current
	v.Choice = s.Choice
	v.Progress = s.Progress
	v.Score = s.Score
}

// gameOverHandlers dismiss the score screen on any click.
type gameOverHandlers struct{ noopHandlers }

func (gameOverHandlers) Pressed(g *Game, _, _ float64, _ core.MouseButton) {
	g.setMode(ModeTitle)
}

func (gameOverHandlers) Describe(g *Game, v *View) {
	v.Score = g.finalScore
}

var modeHandlers = [...]ModeHandlers{
	ModeTitle:    titleHandlers{},
	ModeInGame:   inGameHandlers{},
	ModeGameOver: gameOverHandlers{},
}

// handlersFor returns the handler set of a mode. Quit has none.
func handlersFor(m Mode) ModeHandlers {
	if m >= 0 && int(m) < len(modeHandlers) {
		return modeHandlers[m]
	}
	return noopHandlers{}
}
