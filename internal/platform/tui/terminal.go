// Package tui provides the Bubble Tea integration for Scølor.
// It turns terminal messages into game events and game views into frames.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/scolor/internal/core"
	"github.com/vovakirdan/scolor/internal/games/scolor"
)

// ErrNotTerminal is returned when the game is started without a terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

// eventBuffer bounds how many pointer moves may wait for the game loop.
const eventBuffer = 64

// frameMsg carries a rendered frame from the game loop to the program.
type frameMsg string

// Terminal connects the game loop to a Bubble Tea program.
// It is the game's event source and presenter.
type Terminal struct {
	program  *tea.Program
	renderer *Renderer
	logger   *log.Logger

	events      *eventQueue
	programDone chan struct{} // closed when the program exits

	closeOnce sync.Once
}

// NewTerminal creates a terminal for a game with the given key bindings.
// Extra options are passed to the Bubble Tea program.
func NewTerminal(keys scolor.KeyBindings, logger *log.Logger, opts ...tea.ProgramOption) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	km := NewKeyMap(keys)
	t := &Terminal{
		renderer:    NewRenderer(km),
		logger:      logger,
		events:      newEventQueue(eventBuffer),
		programDone: make(chan struct{}),
	}

	model := bridgeModel{
		keys:   km,
		events: t.events,
	}
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, opts...)
	t.program = tea.NewProgram(model, opts...)
	return t
}

// Next returns the next terminal event. Once the program has exited it
// reports a quit. A blocking call also returns when ctx is done.
func (t *Terminal) Next(ctx context.Context, block bool) (core.Event, bool) {
	for {
		if ev, ok := t.events.Pop(); ok {
			return ev, true
		}
		if !block {
			select {
			case <-t.programDone:
				return core.QuitEvent{}, true
			default:
				return nil, false
			}
		}

		select {
		case <-t.events.Ready():
		case <-t.programDone:
			return core.QuitEvent{}, true
		case <-ctx.Done():
			return nil, false
		}
	}
}

// Present renders v and hands the frame to the program.
func (t *Terminal) Present(v scolor.View) {
	t.program.Send(frameMsg(t.renderer.Render(v)))
}

// Run runs the program and the game loop side by side until both end.
// When the loop returns the program is stopped; when the program exits
// first the loop sees a quit event.
func (t *Terminal) Run(ctx context.Context, loop func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer t.program.Quit()
		return loop(ctx)
	})

	g.Go(func() error {
		defer close(t.programDone)
		_, err := t.program.Run()
		switch {
		case errors.Is(err, tea.ErrInterrupted):
			t.logger.Debug("program interrupted")
		case err != nil:
			return fmt.Errorf("tui: run program: %w", err)
		}
		t.logger.Debug("program exited")
		return nil
	})

	return g.Wait()
}

// Close releases presenter resources. It is safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.renderer.Release()
		t.logger.Debug("terminal closed")
	})
}

// bridgeModel is the Bubble Tea model behind a Terminal. It forwards input
// to the game loop and displays the last frame it received. Update never
// waits on the loop, so frames sent by the loop are always received.
type bridgeModel struct {
	keys   KeyMap
	events *eventQueue
	frame  string
}

// Init implements tea.Model.
func (m bridgeModel) Init() tea.Cmd {
	return nil
}

// Update forwards input messages and stores frames.
func (m bridgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)

	case tea.KeyMsg:
		m.events.Push(m.keys.translateKey(msg))

	case tea.MouseMsg:
		for _, ev := range translateMouse(msg) {
			m.events.Push(ev)
		}

	case tea.WindowSizeMsg:
		m.events.Push(core.ResizeEvent{Display: core.MainDisplay, Width: msg.Width, Height: msg.Height})
	}
	return m, nil
}

// View returns the last frame.
func (m bridgeModel) View() string {
	return m.frame
}
