package config

import (
	_ "embed"
)

//go:embed defaults/scolor.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration.
// It mirrors defaults/scolor.yaml and is the base Parse decodes onto.
func DefaultConfig() Config {
	return Config{
		Round: RoundConfig{
			BaseMs:  2000,
			StepMs:  100,
			FloorMs: 500,
		},
		FrameDelayMs: 20,
		Hover: HoverConfig{
			MinX: 0.333,
			MaxX: 0.666,
			MinY: 0.8,
		},
		Keys: KeyConfig{
			Yellow:  []string{"left", "h"},
			Magenta: []string{"down", "j"},
			Green:   []string{"right", "l"},
		},
	}
}
