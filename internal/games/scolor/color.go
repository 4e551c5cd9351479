package scolor

import "math/rand"

// Color is one of the three game colors, or None for "no selection".
type Color int

const (
	None Color = iota - 1
	Yellow
	Magenta
	Green
)

// numColors is the number of real game colors.
const numColors = 3

// Valid reports whether c is one of the three game colors.
func (c Color) Valid() bool {
	return c >= Yellow && c <= Green
}

// String returns the lower-case color name.
func (c Color) String() string {
	switch c {
	case Yellow:
		return "yellow"
	case Magenta:
		return "magenta"
	case Green:
		return "green"
	case None:
		return "none"
	default:
		return "invalid"
	}
}

// Colors returns the three game colors in selection-panel order.
func Colors() [numColors]Color {
	return [numColors]Color{Yellow, Magenta, Green}
}

// randomColor draws one of the three game colors uniformly.
func randomColor(rng *rand.Rand) Color {
	return Color(rng.Intn(numColors))
}

// randomColorExcept draws uniformly among the two colors different from c,
// resampling on collision.
func randomColorExcept(rng *rand.Rand, c Color) Color {
	next := randomColor(rng)
	for next == c {
		next = randomColor(rng)
	}
	return next
}
