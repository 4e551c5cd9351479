// Package scolor implements Scølor, a reaction-time game: a bar of the target
// color rises over the background and the player must pick that color among
// three before it reaches the top.
//
// The package is pure game logic. Input arrives through an EventSource and
// output leaves as View snapshots through a Presenter, both implemented by the
// platform layer.
package scolor

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scolor/internal/config"
	"github.com/vovakirdan/scolor/internal/core"
)

// TitleState is the state owned by the title screen.
type TitleState struct {
	PlayHovered bool
}

// Display describes the presentation surface pointer positions refer to.
type Display struct {
	ID     core.DisplayID
	Width  int
	Height int
}

// normalize converts a cell position into [0,1] fractions of the display.
// An empty axis normalizes to 0.
func (d Display) normalize(x, y int) (float64, float64) {
	var nx, ny float64
	if d.Width > 0 {
		nx = float64(x) / float64(d.Width)
	}
	if d.Height > 0 {
		ny = float64(y) / float64(d.Height)
	}
	return nx, ny
}

// Game is the aggregate of all game state: the active mode, the state of each
// mode and the collaborators they need. It is owned by a single loop.
type Game struct {
	mode       Mode
	title      TitleState
	engine     *Engine
	finalScore int
	display    Display

	clock      core.Clock
	keys       KeyBindings
	hover      config.HoverConfig
	frameDelay time.Duration
	logger     *log.Logger
}

// New creates a game on the title screen.
// A nil logger discards log output.
func New(cfg config.Config, rc core.RuntimeConfig, clock core.Clock, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := rc.ResolveSeed()
	logger.Debug("new game", "seed", seed)

	return &Game{
		mode:   ModeTitle,
		engine: NewEngine(rand.New(rand.NewSource(seed)), cfg.Curve()),
		display: Display{
			ID:     core.MainDisplay,
			Width:  rc.ScreenW,
			Height: rc.ScreenH,
		},
		clock:      clock,
		keys:       NewKeyBindings(cfg.Keys),
		hover:      cfg.Hover,
		frameDelay: cfg.FrameDelay(),
		logger:     logger,
	}
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Title returns the title screen state.
func (g *Game) Title() TitleState {
	return g.title
}

// Round returns the state of the round engine.
func (g *Game) Round() RoundState {
	return g.engine.State()
}

// Display returns the current display dimensions.
func (g *Game) Display() Display {
	return g.display
}

// FinalScore returns the score of the last lost game.
func (g *Game) FinalScore() int {
	return g.finalScore
}

// Keys returns the in-game key bindings.
func (g *Game) Keys() KeyBindings {
	return g.keys
}

// Quit moves the game to the terminal Quit mode. Calling it again is a no-op.
func (g *Game) Quit() {
	g.setMode(ModeQuit)
}

// Frame advances the round engine by one tick when in game.
// Losing the round moves the game to GameOver with the final score.
func (g *Game) Frame() {
	if g.mode != ModeInGame {
		return
	}

	switch g.engine.Tick(g.clock.NowMillis()) {
	case OutcomeWon:
		s := g.engine.State()
		g.logger.Debug("round won", "score", s.Score, "duration", s.Duration)
	case OutcomeLost:
		g.finalScore = g.engine.State().Score
		g.logger.Info("game over", "score", g.finalScore)
		g.setMode(ModeGameOver)
	}
}

// startGame begins a new game from the title screen.
func (g *Game) startGame() {
	g.finalScore = 0
	g.engine.StartRound(g.clock.NowMillis())
	g.setMode(ModeInGame)
}

// setMode performs a mode transition. Quit is terminal.
func (g *Game) setMode(m Mode) {
	if g.mode == ModeQuit || g.mode == m {
		return
	}
	g.logger.Debug("mode change", "from", g.mode, "to", m)
	g.mode = m
}
