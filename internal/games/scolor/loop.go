package scolor

import "context"

// Presenter draws view snapshots. It is write-only from the game's side.
type Presenter interface {
	Present(v View)
}

// Run drives the game until it reaches Quit or ctx is done:
// present the current view, dispatch one event and, in game only, advance
// the round and wait out the frame delay.
//
// Run returns nil when the player quits and the context's cause when the
// context ended the session.
func Run(ctx context.Context, g *Game, src EventSource, p Presenter) error {
	for g.Mode() != ModeQuit {
		if ctx.Err() != nil {
			g.Quit()
			return context.Cause(ctx)
		}

		p.Present(g.View())

		mode := g.Mode()
		g.Dispatch(ctx, src, mode.Policy())
		if mode != ModeInGame || g.Mode() != ModeInGame {
			continue
		}

		g.Frame()
		g.clock.Sleep(g.frameDelay)
	}

	if ctx.Err() != nil {
		return context.Cause(ctx)
	}
	return nil
}
