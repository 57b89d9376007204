// Package window presents the simulation in a desktop window using ebiten.
package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/engine"
	"github.com/lixenwraith/robot-soccer/render"
)

// Presenter implements render.Presenter with an ebiten window
// Run must be called from the main goroutine
type Presenter struct {
	title  string
	width  int
	height int
}

var _ render.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter sized to the field
func NewPresenter() *Presenter {
	return &Presenter{
		title:  constant.WindowTitle,
		width:  int(constant.FieldWidth),
		height: int(constant.FieldHeight),
	}
}

// Run opens the window and blocks until it is closed or ctx is cancelled
func (p *Presenter) Run(ctx context.Context, frames <-chan struct{}, src engine.SnapshotSource) error {
	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle(p.title)

	g := &game{
		ctx:    ctx,
		frames: frames,
		src:    src,
		snap:   src.Snapshot(),
		width:  p.width,
		height: p.height,
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// quitKeyPressed reports Esc or Q; replaced in tests
var quitKeyPressed = func() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)
}

// game adapts snapshots to ebiten's Update/Draw cycle
type game struct {
	ctx    context.Context
	frames <-chan struct{}
	src    engine.SnapshotSource
	snap   *engine.Snapshot

	width  int
	height int

	// Rendered end message, built once per message text
	msgText  string
	msgImage *ebiten.Image
	msgMinX  int
	msgMinY  int
}

func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if quitKeyPressed() {
		return ebiten.Termination
	}

	// Render requests coalesce; only the latest snapshot matters
	select {
	case <-g.frames:
		g.snap = g.src.Snapshot()
	default:
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(constant.ColorField)

	snap := g.snap
	if snap == nil {
		return
	}

	for _, b := range snap.Balls {
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), b.Color, true)
	}

	left, top, _, _ := snap.Goal.Bounds()
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(snap.Goal.W), float32(snap.Goal.H), constant.ColorGoal, false)

	if msg := snap.Message(); msg != "" {
		g.drawMessage(screen, msg)
	}
}

// drawMessage scales the bitmap font so the message reads at roughly 50px
func (g *game) drawMessage(screen *ebiten.Image, msg string) {
	if g.msgText != msg || g.msgImage == nil {
		face := basicfont.Face7x13
		bounds := text.BoundString(face, msg)
		if bounds.Empty() {
			return
		}
		img := ebiten.NewImage(bounds.Dx(), bounds.Dy())
		text.Draw(img, msg, face, -bounds.Min.X, -bounds.Min.Y, constant.ColorMessage)
		g.msgText = msg
		g.msgImage = img
		g.msgMinX = bounds.Min.X
		g.msgMinY = bounds.Min.Y
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(constant.MessageScale, constant.MessageScale)
	// Baseline sits at (MessageX, MessageY)
	op.GeoM.Translate(
		constant.MessageX+float64(g.msgMinX)*constant.MessageScale,
		constant.MessageY+float64(g.msgMinY)*constant.MessageScale,
	)
	screen.DrawImage(g.msgImage, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
