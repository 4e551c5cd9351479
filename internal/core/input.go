package core

// Event is a raw input event delivered by the platform layer.
// The set of implementations is closed: QuitEvent, KeyDownEvent,
// PointerMoveEvent, PointerClickEvent and ResizeEvent.
type Event interface {
	isEvent()
}

// DisplayID identifies a presentation surface. A terminal has exactly one,
// MainDisplay, but resize events carry the target so foreign ones can be
// filtered out.
type DisplayID uint32

// MainDisplay is the display a game is created for by default.
const MainDisplay DisplayID = 1

// MouseButton identifies the pointer button of a click.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// String returns a human-readable name for the button.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseMiddle:
		return "Middle"
	case MouseRight:
		return "Right"
	default:
		return "None"
	}
}

// QuitEvent requests the session to end.
type QuitEvent struct{}

// KeyDownEvent reports a key press by its platform key name ("left", "j", ...).
type KeyDownEvent struct {
	Code string
}

// PointerMoveEvent reports the pointer position in display cells.
type PointerMoveEvent struct {
	X, Y int
}

// PointerClickEvent reports a button press at a position in display cells.
type PointerClickEvent struct {
	X, Y   int
	Button MouseButton
}

// ResizeEvent reports new dimensions for a display.
type ResizeEvent struct {
	Display       DisplayID
	Width, Height int
}

func (QuitEvent) isEvent()         {}
func (KeyDownEvent) isEvent()      {}
func (PointerMoveEvent) isEvent()  {}
func (PointerClickEvent) isEvent() {}
func (ResizeEvent) isEvent()       {}
