// Package config provides the built-in game constants, shipped as an embedded
// YAML document, and the difficulty curve derived from them.
package config

// Config contains all tunable constants of the game.
type Config struct {
	Round        RoundConfig `yaml:"round"`
	FrameDelayMs int         `yaml:"frame_delay_ms"`
	Hover        HoverConfig `yaml:"hover"`
	Keys         KeyConfig   `yaml:"keys"`
}

// RoundConfig defines the round deadline curve in milliseconds.
// The deadline for a score s is max(BaseMs - s*StepMs, FloorMs).
type RoundConfig struct {
	BaseMs  int `yaml:"base_ms"`
	StepMs  int `yaml:"step_ms"`
	FloorMs int `yaml:"floor_ms"`
}

// HoverConfig defines the Play control region on the title screen,
// in normalized display coordinates.
type HoverConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
}

// KeyConfig lists the key names that select each color in game.
type KeyConfig struct {
	Yellow  []string `yaml:"yellow"`
	Magenta []string `yaml:"magenta"`
	Green   []string `yaml:"green"`
}

// Contains reports whether the normalized point (x, y) is over the Play control.
func (h HoverConfig) Contains(x, y float64) bool {
	return x >= h.MinX && x <= h.MaxX && y >= h.MinY
}
