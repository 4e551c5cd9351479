package config

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// QuitKeys are always bound to quitting and cannot select a color.
var QuitKeys = []string{"ctrl+c", "q", "esc"}

// Load returns the built-in configuration parsed from the embedded YAML.
// A document that does not parse or validate is a build defect and is
// reported as an error.
func Load() (Config, error) {
	return load(defaultYAML)
}

func load(data []byte) (Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a YAML document over DefaultConfig, so omitted fields keep
// their built-in values. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, nil
}

// Validate checks that the constants describe a playable game.
func (c Config) Validate() error {
	r := c.Round
	switch {
	case r.BaseMs <= 0:
		return fmt.Errorf("%w: round.base_ms must be positive, got %d", ErrInvalid, r.BaseMs)
	case r.StepMs < 0:
		return fmt.Errorf("%w: round.step_ms must not be negative, got %d", ErrInvalid, r.StepMs)
	case r.FloorMs <= 0 || r.FloorMs > r.BaseMs:
		return fmt.Errorf("%w: round.floor_ms must be in (0, base_ms], got %d", ErrInvalid, r.FloorMs)
	case c.FrameDelayMs < 0:
		return fmt.Errorf("%w: frame_delay_ms must not be negative, got %d", ErrInvalid, c.FrameDelayMs)
	}

	h := c.Hover
	if h.MinX < 0 || h.MaxX > 1 || h.MinX > h.MaxX || h.MinY < 0 || h.MinY > 1 {
		return fmt.Errorf("%w: hover region %+v is outside the unit square", ErrInvalid, h)
	}

	seen := make(map[string]string)
	for _, k := range QuitKeys {
		seen[k] = "quit"
	}
	bindings := []struct {
		name string
		keys []string
	}{
		{"yellow", c.Keys.Yellow},
		{"magenta", c.Keys.Magenta},
		{"green", c.Keys.Green},
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, b.name)
		}
		for _, k := range b.keys {
			if other, dup := seen[k]; dup {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, other, b.name)
			}
			seen[k] = b.name
		}
	}
	return nil
}

// FrameDelay returns the pause between in-game frames.
func (c Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// Curve returns the difficulty curve for these constants.
func (c Config) Curve() Curve {
	return NewCurve(c.Round)
}
