package scolor

// Mode is the top-level state of the game. Exactly one is active at a time.
type Mode int

const (
	ModeTitle Mode = iota
	ModeInGame
	ModeGameOver
	ModeQuit // terminal
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeInGame:
		return "in-game"
	case ModeGameOver:
		return "game-over"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Policy selects how the dispatcher waits for input in a mode.
func (m Mode) Policy() Policy {
	if m == ModeInGame {
		return Polling
	}
	return Blocking
}
