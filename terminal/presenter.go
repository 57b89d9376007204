package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/robot-soccer/core"
	"github.com/lixenwraith/robot-soccer/engine"
	"github.com/lixenwraith/robot-soccer/render"
	"github.com/lixenwraith/robot-soccer/status"
)

// Presenter implements render.Presenter on a tcell screen
type Presenter struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
}

var _ render.Presenter = (*Presenter)(nil)

// NewPresenter wraps an initialized screen; reg feeds the status bar and may be nil
func NewPresenter(screen tcell.Screen, reg *status.Registry) *Presenter {
	return &Presenter{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, reg),
	}
}

// Run draws frames until the user quits or ctx is cancelled
// The screen is not finalized here; the caller owns its lifetime
func (p *Presenter) Run(ctx context.Context, frames <-chan struct{}, src engine.SnapshotSource) error {
	eventChan := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)

	// PollEvent blocks; the poller exits on screen finalization or when Run has returned
	core.Go(func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-stop:
				return
			}
		}
	})

	p.renderer.RenderFrame(src.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				w, h := p.screen.Size()
				p.renderer.Resize(w, h)
				p.screen.Sync()
				p.renderer.RenderFrame(src.Snapshot())
			}

		case <-frames:
			p.renderer.RenderFrame(src.Snapshot())
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
