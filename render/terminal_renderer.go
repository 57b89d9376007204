package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/engine"
	"github.com/lixenwraith/robot-soccer/status"
	"github.com/lixenwraith/robot-soccer/vmath"
)

// TerminalRenderer rasterizes snapshots onto a tcell screen
type TerminalRenderer struct {
	screen   tcell.Screen
	reg      *status.Registry
	width    int
	height   int
	viewport Viewport

	// Per-cell background of the last frame, reused across frames
	cells []color.RGBA
}

// NewTerminalRenderer creates a renderer sized to the screen; reg feeds the status bar and may be nil
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, reg: reg}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the field layout for a new screen size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.viewport = NewViewport(width, height-constant.StatusBarRows, constant.CellAspect)
	r.cells = make([]color.RGBA, r.viewport.FieldCols()*r.viewport.FieldRows())
}

// Viewport returns the current field layout
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// RenderFrame draws the balls, the goal over them, the end message and the status bar
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	r.screen.Clear()
	if snap == nil {
		r.screen.Show()
		return
	}

	vp := r.viewport
	cols := vp.FieldCols()
	left, top, right, bottom := snap.Goal.Bounds()

	for row := 0; row < vp.FieldRows(); row++ {
		for col := 0; col < cols; col++ {
			p := vp.CellCenter(col, row)

			bg := constant.ColorField
			for _, b := range snap.Balls {
				if vmath.Distance(p, b.Pos) <= b.Radius {
					bg = b.Color
				}
			}
			if p.X > left && p.X < right && p.Y > top && p.Y < bottom {
				bg = Blend(bg, constant.ColorGoal)
			}

			r.cells[row*cols+col] = bg
			x, y := vp.ToScreen(col, row)
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcellColor(bg)))
		}
	}

	// Balls smaller than a cell still get a marker at their center
	for _, b := range snap.Balls {
		if b.Radius*2 >= vp.Scale {
			continue
		}
		col, row := vp.ToCell(b.Pos)
		x, y := vp.ToScreen(col, row)
		style := tcell.StyleDefault.Foreground(tcellColor(b.Color)).Background(tcellColor(r.cells[row*cols+col]))
		r.screen.SetContent(x, y, '●', nil, style)
	}

	if msg := snap.Message(); msg != "" {
		r.drawMessage(msg)
	}

	r.drawStatusBar(snap)
	r.screen.Show()
}

// drawMessage writes the end message left-aligned at the anchor, clipped to the field
func (r *TerminalRenderer) drawMessage(msg string) {
	vp := r.viewport
	cols := vp.FieldCols()
	col, row := vp.ToCell(vmath.Vec2{X: constant.MessageX, Y: constant.MessageY})

	for _, ch := range msg {
		if col >= cols {
			break
		}
		style := tcell.StyleDefault.
			Foreground(tcellColor(constant.ColorMessage)).
			Background(tcellColor(r.cells[row*cols+col])).
			Bold(true)
		x, y := vp.ToScreen(col, row)
		r.screen.SetContent(x, y, ch, nil, style)
		col++
	}
}

// drawStatusBar writes the metrics line under the field
func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot) {
	y := r.viewport.OffsetY + r.viewport.FieldRows()
	if y >= r.height {
		return
	}

	var text string
	if r.reg != nil {
		text = r.reg.Format()
	} else {
		text = fmt.Sprintf("tick=%d speed=%.2f", snap.Tick, snap.Player().Speed)
	}
	if snap.Outcome.Terminal() {
		text += "  [q] quit"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
