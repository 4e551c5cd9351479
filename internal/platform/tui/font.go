package tui

import (
	"strings"

	"github.com/vovakirdan/scolor/internal/core"
)

// glyphHeight is the number of rows of every glyph in the block font.
const glyphHeight = 5

// glyphs is a 3x5 block font covering the captions and digits the game draws.
var glyphs = map[rune][glyphHeight]string{
	'A': {"███", "█ █", "███", "█ █", "█ █"},
	'C': {"███", "█  ", "█  ", "█  ", "███"},
	'E': {"███", "█  ", "██ ", "█  ", "███"},
	'G': {"███", "█  ", "█ █", "█ █", "███"},
	'L': {"█  ", "█  ", "█  ", "█  ", "███"},
	'M': {"█ █", "███", "█ █", "█ █", "█ █"},
	'O': {"███", "█ █", "█ █", "█ █", "███"},
	'Ø': {"███", "█ █", "█▞█", "█ █", "███"},
	'P': {"███", "█ █", "███", "█  ", "█  "},
	'R': {"██ ", "█ █", "██ ", "█ █", "█ █"},
	'S': {"███", "█  ", "███", "  █", "███"},
	'V': {"█ █", "█ █", "█ █", "█ █", " █ "},
	'Y': {"█ █", "█ █", "███", " █ ", " █ "},
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	' ': {"  ", "  ", "  ", "  ", "  "},
}

// bannerFits reports whether every rune of text has a glyph.
func bannerFits(text string) bool {
	for _, r := range strings.ToUpper(text) {
		if _, ok := glyphs[r]; !ok {
			return false
		}
	}
	return true
}

// renderBanner draws text in the block font onto a new screen sized to fit.
// Glyphs are separated by one blank column. Unknown runes are skipped.
func renderBanner(text string, c core.Color) *core.Screen {
	var rows [glyphHeight]strings.Builder
	first := true
	for _, r := range strings.ToUpper(text) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteRune(' ')
			}
			rows[i].WriteString(g[i])
		}
		first = false
	}

	width := len([]rune(rows[0].String()))
	s := core.NewScreen(width, glyphHeight)
	for y := range rows {
		x := 0
		for _, r := range rows[y].String() {
			if r != ' ' {
				s.Set(x, y, r, c)
			}
			x++
		}
	}
	return s
}

// blit copies the non-blank cells of src onto dst with the top-left at (x, y).
func blit(dst, src *core.Screen, x, y int) {
	for sy := 0; sy < src.Height(); sy++ {
		for sx := 0; sx < src.Width(); sx++ {
			if src.Get(sx, sy) == ' ' {
				continue
			}
			cell := src.GetCell(sx, sy)
			dst.Set(x+sx, y+sy, cell.Rune, cell.Color)
		}
	}
}

// captionCache holds banners for fixed captions. Entries are rendered on
// first use and dropped by Release.
type captionCache struct {
	entries map[string]*core.Screen
}

func newCaptionCache() *captionCache {
	return &captionCache{entries: make(map[string]*core.Screen)}
}

// get returns the cached banner for text, rendering it on first use.
func (c *captionCache) get(text string, color core.Color) *core.Screen {
	if c.entries == nil {
		c.entries = make(map[string]*core.Screen)
	}
	if s, ok := c.entries[text]; ok {
		return s
	}
	s := renderBanner(text, color)
	c.entries[text] = s
	return s
}

// Len returns the number of cached banners.
func (c *captionCache) Len() int {
	return len(c.entries)
}

// Release drops all cached banners.
func (c *captionCache) Release() {
	c.entries = nil
}
