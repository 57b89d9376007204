package window

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/robot-soccer/engine"
)

// countingSource hands out a fresh snapshot per read
type countingSource struct {
	reads int
}

func (s *countingSource) Snapshot() *engine.Snapshot {
	s.reads++
	return &engine.Snapshot{Tick: uint64(s.reads)}
}

func newTestGame(t *testing.T, ctx context.Context, keyDown bool) (*game, chan struct{}, *countingSource) {
	t.Helper()
	orig := quitKeyPressed
	quitKeyPressed = func() bool { return keyDown }
	t.Cleanup(func() { quitKeyPressed = orig })

	src := &countingSource{}
	frames := make(chan struct{}, 1)
	g := &game{
		ctx:    ctx,
		frames: frames,
		src:    src,
		snap:   src.Snapshot(),
		width:  400,
		height: 600,
	}
	return g, frames, src
}

func TestUpdateTerminatesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g, frames, src := newTestGame(t, ctx, false)
	cancel()
	frames <- struct{}{}

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update = %v, want ebiten.Termination", err)
	}
	if src.reads != 1 {
		t.Errorf("snapshot read after cancel: reads = %d, want 1", src.reads)
	}
}

func TestUpdateTerminatesOnQuitKey(t *testing.T) {
	g, _, _ := newTestGame(t, context.Background(), true)

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update = %v, want ebiten.Termination", err)
	}
}

func TestUpdateRefreshesOnFrame(t *testing.T) {
	g, frames, src := newTestGame(t, context.Background(), false)
	frames <- struct{}{}

	if err := g.Update(); err != nil {
		t.Fatalf("Update = %v", err)
	}
	if src.reads != 2 {
		t.Errorf("reads = %d, want 2", src.reads)
	}
	if g.snap.Tick != 2 {
		t.Errorf("snap.Tick = %d, want 2", g.snap.Tick)
	}
}

func TestUpdateKeepsSnapshotWithoutFrame(t *testing.T) {
	g, _, src := newTestGame(t, context.Background(), false)
	before := g.snap

	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update = %v", err)
		}
	}
	if g.snap != before {
		t.Error("snapshot replaced without a render request")
	}
	if src.reads != 1 {
		t.Errorf("reads = %d, want 1", src.reads)
	}
}

func TestUpdateCoalescesRequests(t *testing.T) {
	g, frames, src := newTestGame(t, context.Background(), false)

	// The channel holds one pending request; further sends are dropped by the scheduler
	frames <- struct{}{}
	select {
	case frames <- struct{}{}:
		t.Fatal("frames channel accepted a second pending request")
	default:
	}

	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update = %v", err)
		}
	}
	if src.reads != 2 {
		t.Errorf("reads = %d, want 2 (one per pending request)", src.reads)
	}
}

func TestLayoutIsFieldSize(t *testing.T) {
	g, _, _ := newTestGame(t, context.Background(), false)
	w, h := g.Layout(1920, 1080)
	if w != 400 || h != 600 {
		t.Errorf("Layout = %d,%d, want 400,600", w, h)
	}
}
