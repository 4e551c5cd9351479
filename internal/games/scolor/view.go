package scolor

// View is an immutable snapshot of everything a Presenter may draw.
// Only the fields relevant to Mode are set.
type View struct {
	Mode    Mode
	Display Display

	// Title
	PlayHovered bool

	// InGame
	Background Color
	Current    Color
	Choice     Color
	Progress   float64

	// InGame (running score) and GameOver (final score)
	Score int
}

// View returns a snapshot of the game for presentation.
func (g *Game) View() View {
	v := View{
		Mode:       g.mode,
		Display:    g.display,
		Background: None,
		Current:    None,
		Choice:     None,
	}
	handlersFor(g.mode).Describe(g, &v)
	return v
}
