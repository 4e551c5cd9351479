package scolor

import (
	"math/rand"

	"github.com/vovakirdan/scolor/internal/config"
	"github.com/vovakirdan/scolor/internal/core"
)

// Outcome is the result of advancing a round by one frame.
type Outcome int

const (
	// OutcomeRunning means the deadline has not passed yet.
	OutcomeRunning Outcome = iota
	// OutcomeWon means the deadline passed with the right color selected
	// and the next round has begun.
	OutcomeWon
	// OutcomeLost means the deadline passed without the right color selected.
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// RoundState is the mutable record of the round in progress.
// Times are in milliseconds of the game clock.
type RoundState struct {
	StartTime  int64   // When the current round began
	Duration   int64   // Deadline length, derived from Score
	Progress   float64 // Fraction of Duration remaining, in [0, 1]
	Score      int     // Rounds won since the game started
	Background Color   // Color the screen shows behind the bar
	Current    Color   // Target color of the round, never equal to Background
	Choice     Color   // Player selection, None until a key is pressed
}

type phase int

const (
	phaseIdle phase = iota
	phaseRunning
	phaseLost
)

// Engine runs the rounds of one game: timing, scoring and the difficulty curve.
type Engine struct {
	rng   *rand.Rand
	curve config.Curve
	state RoundState
	phase phase
}

// NewEngine creates an idle engine. StartRound must be called before Tick
// has any effect.
func NewEngine(rng *rand.Rand, curve config.Curve) *Engine {
	return &Engine{
		rng:   rng,
		curve: curve,
		state: RoundState{Background: None, Current: None, Choice: None},
	}
}

// StartRound resets the engine for a new game starting at now.
func (e *Engine) StartRound(now int64) {
	background := randomColor(e.rng)
	e.state = RoundState{
		StartTime:  now,
		Duration:   e.curve.RoundMillis(0),
		Progress:   1,
		Score:      0,
		Background: background,
		Current:    randomColorExcept(e.rng, background),
		Choice:     None,
	}
	e.phase = phaseRunning
}

// Tick advances the round to now.
//
// Before the deadline only Progress changes. At or after the deadline the
// round resolves: a matching Choice scores a point and seamlessly starts the
// next round from now, anything else loses the game. A lost engine is frozen
// and keeps reporting OutcomeLost; an idle engine reports OutcomeRunning.
func (e *Engine) Tick(now int64) Outcome {
	switch e.phase {
	case phaseIdle:
		return OutcomeRunning
	case phaseLost:
		return OutcomeLost
	}

	s := &e.state
	if now-s.StartTime < s.Duration {
		remaining := float64(s.StartTime+s.Duration-now) / float64(s.Duration)
		s.Progress = core.ClampF(remaining, 0, 1)
		return OutcomeRunning
	}

	if s.Choice != s.Current {
		e.phase = phaseLost
		return OutcomeLost
	}

	s.Score++
	s.Background = s.Current
	s.Current = randomColorExcept(e.rng, s.Background)
	s.StartTime = now
	s.Duration = e.curve.RoundMillis(s.Score)
	s.Choice = None
	s.Progress = 1
	return OutcomeWon
}

// Select records the player's tentative choice for the running round.
// The last selection before the deadline wins. Returns false, leaving the
// state untouched, for None, invalid colors or an engine that is not running.
func (e *Engine) Select(c Color) bool {
	if e.phase != phaseRunning || !c.Valid() {
		return false
	}
	e.state.Choice = c
	return true
}

// State returns a copy of the current round state.
func (e *Engine) State() RoundState {
	return e.state
}

// Running reports whether a round is in progress.
func (e *Engine) Running() bool {
	return e.phase == phaseRunning
}
