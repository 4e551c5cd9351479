package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/scolor/internal/core"
	"github.com/vovakirdan/scolor/internal/games/scolor"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

// Layout fractions of the display.
const (
	panelTop    = 0.8  // top edge of the color panels and height of the bar
	panelWidth  = 0.34 // each of the three panels
	panelHeight = 0.21
	titleTop    = 0.3
	gameOverTop = 0.25
)

// Fixed captions.
const (
	titleCaption    = "Scølor"
	playCaption     = "Play"
	gameOverCaption = "Game Over"
	scoreCaption    = "Score:"
)

const (
	solid  = '█'
	shaded = '▓'
)

// paletteColor returns the terminal color of a game color.
func paletteColor(c scolor.Color) core.Color {
	switch c {
	case scolor.Yellow:
		return core.ColorYellow
	case scolor.Magenta:
		return core.ColorMagenta
	case scolor.Green:
		return core.ColorGreen
	}
	return core.ColorDefault
}

// highlightColor returns the highlighted variant of a game color.
func highlightColor(c scolor.Color) core.Color {
	switch c {
	case scolor.Yellow:
		return core.ColorBrightYellow
	case scolor.Magenta:
		return core.ColorBrightMagenta
	case scolor.Green:
		return core.ColorBrightGreen
	}
	return core.ColorWhite
}

// Renderer draws game views into a screen buffer.
// It owns a cache of caption banners that lives until Release.
type Renderer struct {
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	captions *captionCache
}

// NewRenderer creates a renderer using keys for panel labels and the help footer.
func NewRenderer(keys KeyMap) *Renderer {
	h := help.New()
	h.ShowAll = false
	return &Renderer{
		keys:     keys,
		help:     h,
		screen:   core.NewScreen(0, 0),
		captions: newCaptionCache(),
	}
}

// Render draws v and returns the styled frame.
func (r *Renderer) Render(v scolor.View) string {
	s := r.Draw(v)
	if v.Mode != scolor.ModeInGame || s.Height() < 2 {
		return RenderScreen(s, s.Height())
	}
	r.help.Width = s.Width()
	return RenderScreen(s, s.Height()-1) + "\n" + r.help.View(r.keys)
}

// Draw draws v into the renderer's screen buffer and returns it.
// The buffer is reused across calls.
func (r *Renderer) Draw(v scolor.View) *core.Screen {
	w, h := v.Display.Width, v.Display.Height
	if r.screen.Width() != w || r.screen.Height() != h {
		r.screen.Resize(w, h)
	}
	r.screen.Clear()
	if w == 0 || h == 0 {
		return r.screen
	}

	switch v.Mode {
	case scolor.ModeTitle:
		r.drawTitle(v)
	case scolor.ModeInGame:
		r.drawGame(v)
	case scolor.ModeGameOver:
		r.drawGameOver(v)
	}
	return r.screen
}

// Release drops cached captions.
func (r *Renderer) Release() {
	r.captions.Release()
}

// panel returns the rectangle of the i-th color panel, clipped to the screen.
func (r *Renderer) panel(i int) core.Rect {
	w, h := r.screen.Width(), r.screen.Height()
	rect := core.FracRect(w, h, float64(i)*panelWidth, panelTop, panelWidth, panelHeight)
	rect.W = core.Min(rect.W, w-rect.X)
	rect.H = core.Min(rect.H, h-rect.Y)
	return rect
}

func (r *Renderer) drawTitle(v scolor.View) {
	s := r.screen
	top := int(titleTop * float64(s.Height()))
	if !r.drawCaption(titleCaption, core.ColorWhite, top) {
		s.DrawTextCentered(top, titleCaption, core.ColorWhite)
	}

	for i, c := range scolor.Colors() {
		s.FillRect(r.panel(i), solid, paletteColor(c))
	}

	play := r.panel(int(scolor.Magenta))
	if v.PlayHovered {
		s.FillRect(play, shaded, core.ColorBrightMagenta)
	}
	banner := r.captions.get(playCaption, core.ColorWhite)
	if banner.Width() <= play.W && banner.Height() <= play.H {
		cx, cy := play.Center()
		blit(s, banner, cx-banner.Width()/2, cy-banner.Height()/2)
	} else {
		s.DrawTextIn(play, playCaption, core.ColorWhite)
	}
}

func (r *Renderer) drawGame(v scolor.View) {
	s := r.screen
	w, h := s.Width(), s.Height()
	s.Fill(solid, paletteColor(v.Background))

	barTop := int(v.Progress * panelTop * float64(h))
	barHeight := int(math.Ceil(panelTop * float64(h)))
	s.FillRect(core.NewRect(0, barTop, w, barHeight), solid, paletteColor(v.Current))

	for i, c := range scolor.Colors() {
		rect := r.panel(i)
		if c == v.Choice {
			s.FillRect(rect, shaded, highlightColor(c))
		} else {
			s.FillRect(rect, solid, paletteColor(c))
		}
		s.DrawTextIn(rect, " "+r.keys.ForColor(c).Help().Key+" ", core.ColorBlack)
	}

	s.DrawText(1, 0, " "+strconv.Itoa(v.Score)+" ", core.ColorWhite)
}

func (r *Renderer) drawGameOver(v scolor.View) {
	s := r.screen
	top := int(gameOverTop * float64(s.Height()))
	if !r.drawCaption(gameOverCaption, core.ColorRed, top) {
		s.DrawTextCentered(top+1, gameOverCaption+", score: "+strconv.Itoa(v.Score), core.ColorRed)
		return
	}

	// The score changes per game, so it is rendered without caching.
	line := renderBanner(scoreCaption+" "+strconv.Itoa(v.Score), core.ColorRed)
	y := top + glyphHeight + 2
	if line.Width() <= s.Width() && y+glyphHeight <= s.Height() {
		blit(s, line, (s.Width()-line.Width())/2, y)
	} else {
		s.DrawTextCentered(top+glyphHeight+1, scoreCaption+" "+strconv.Itoa(v.Score), core.ColorRed)
	}
	s.DrawTextCentered(s.Height()-1, "click to continue", core.ColorGray)
}

// drawCaption draws a cached banner centered horizontally at row y.
// It reports false, drawing nothing, when the banner does not fit.
func (r *Renderer) drawCaption(text string, c core.Color, y int) bool {
	s := r.screen
	if !bannerFits(text) {
		return false
	}
	banner := r.captions.get(text, c)
	if banner.Width() > s.Width() || y+banner.Height() > s.Height() {
		return false
	}
	blit(s, banner, (s.Width()-banner.Width())/2, y)
	return true
}

// RenderScreen converts the first rows of a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, rows int) string {
	rows = core.Clamp(rows, 0, s.Height())
	var sb strings.Builder
	sb.Grow(s.Width()*rows*2 + rows)

	for y := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
