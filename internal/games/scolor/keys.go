package scolor

import "github.com/vovakirdan/scolor/internal/config"

// KeyBindings maps key names to the color they select in game.
type KeyBindings struct {
	byCode  map[string]Color
	byColor [numColors][]string
}

// NewKeyBindings builds bindings from the configured key lists.
// A key listed for several colors keeps its first binding.
func NewKeyBindings(k config.KeyConfig) KeyBindings {
	b := KeyBindings{byCode: make(map[string]Color)}
	for c, keys := range map[Color][]string{Yellow: k.Yellow, Magenta: k.Magenta, Green: k.Green} {
		b.byColor[c] = append([]string(nil), keys...)
	}
	for _, c := range Colors() {
		for _, code := range b.byColor[c] {
			if _, taken := b.byCode[code]; !taken {
				b.byCode[code] = c
			}
		}
	}
	return b
}

// Lookup returns the color bound to a key name.
func (b KeyBindings) Lookup(code string) (Color, bool) {
	c, ok := b.byCode[code]
	return c, ok
}

// Keys returns the key names bound to c, in configuration order.
func (b KeyBindings) Keys(c Color) []string {
	if !c.Valid() {
		return nil
	}
	return append([]string(nil), b.byColor[c]...)
}
