package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/scolor/internal/config"
	"github.com/vovakirdan/scolor/internal/core"
	"github.com/vovakirdan/scolor/internal/games/scolor"
)

// KeyMap holds the terminal key bindings: one per game color plus quit.
type KeyMap struct {
	Yellow  key.Binding
	Magenta key.Binding
	Green   key.Binding
	Quit    key.Binding
}

// arrowGlyphs shortens arrow key names in the help footer.
var arrowGlyphs = map[string]string{
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
}

// NewKeyMap builds bindings from the game's color keys.
func NewKeyMap(b scolor.KeyBindings) KeyMap {
	return KeyMap{
		Yellow:  colorBinding(b, scolor.Yellow),
		Magenta: colorBinding(b, scolor.Magenta),
		Green:   colorBinding(b, scolor.Green),
		Quit: key.NewBinding(
			key.WithKeys(config.QuitKeys...),
			key.WithHelp("q", "quit"),
		),
	}
}

func colorBinding(b scolor.KeyBindings, c scolor.Color) key.Binding {
	keys := b.Keys(c)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), c.String()),
	)
}

// helpKeys joins key names for display, e.g. "←/h".
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if g, ok := arrowGlyphs[k]; ok {
			names[i] = g
			continue
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// ForColor returns the binding of a game color.
func (k KeyMap) ForColor(c scolor.Color) key.Binding {
	switch c {
	case scolor.Yellow:
		return k.Yellow
	case scolor.Magenta:
		return k.Magenta
	case scolor.Green:
		return k.Green
	}
	return key.Binding{}
}

// ShortHelp returns key bindings for the in-game footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yellow, k.Magenta, k.Green, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Yellow, k.Magenta, k.Green},
		{k.Quit},
	}
}

// translateKey converts a key message into a game event.
func (k KeyMap) translateKey(msg tea.KeyMsg) core.Event {
	if key.Matches(msg, k.Quit) {
		return core.QuitEvent{}
	}
	return core.KeyDownEvent{Code: msg.String()}
}

// translateMouse converts a mouse message into game events. A press is
// preceded by a move to the same cell so hover state is current even on
// terminals that do not report motion. Wheel and release events are dropped.
func translateMouse(msg tea.MouseMsg) []core.Event {
	switch msg.Action {
	case tea.MouseActionMotion:
		return []core.Event{core.PointerMoveEvent{X: msg.X, Y: msg.Y}}
	case tea.MouseActionPress:
		var button core.MouseButton
		switch msg.Button {
		case tea.MouseButtonLeft:
			button = core.MouseLeft
		case tea.MouseButtonMiddle:
			button = core.MouseMiddle
		case tea.MouseButtonRight:
			button = core.MouseRight
		default:
			return nil
		}
		return []core.Event{
			core.PointerMoveEvent{X: msg.X, Y: msg.Y},
			core.PointerClickEvent{X: msg.X, Y: msg.Y, Button: button},
		}
	}
	return nil
}
