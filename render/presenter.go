package render

import (
	"context"

	"github.com/lixenwraith/robot-soccer/engine"
)

// Presenter owns the UI goroutine: display lifecycle, input and exit-on-close
// Run draws the latest snapshot whenever a render request arrives and returns when the user quits or ctx ends
// The final frame stays on screen after the simulation finishes until the user quits
type Presenter interface {
	Run(ctx context.Context, frames <-chan struct{}, src engine.SnapshotSource) error
}
