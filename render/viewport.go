package render

import (
	"math"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/vmath"
)

// Viewport maps the field onto a grid of terminal cells
// A cell spans Scale field units horizontally and Scale*Aspect vertically; the field is centered in the grid
type Viewport struct {
	Cols, Rows int     // grid available to the field
	Scale      float64 // field units per column
	Aspect     float64 // cell height / cell width
	OffsetX    int
	OffsetY    int
}

// NewViewport fits the whole field into cols x rows cells
func NewViewport(cols, rows int, aspect float64) Viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if aspect <= 0 {
		aspect = 1
	}

	scale := math.Max(constant.FieldWidth/float64(cols), constant.FieldHeight/(float64(rows)*aspect))
	v := Viewport{Cols: cols, Rows: rows, Scale: scale, Aspect: aspect}
	v.OffsetX = (cols - v.FieldCols()) / 2
	v.OffsetY = (rows - v.FieldRows()) / 2
	return v
}

// FieldCols is the number of columns the field occupies
func (v Viewport) FieldCols() int {
	return min(v.Cols, int(math.Ceil(constant.FieldWidth/v.Scale-1e-9)))
}

// FieldRows is the number of rows the field occupies
func (v Viewport) FieldRows() int {
	return min(v.Rows, int(math.Ceil(constant.FieldHeight/(v.Scale*v.Aspect)-1e-9)))
}

// CellCenter returns the field point at the center of the field-relative cell (col, row)
func (v Viewport) CellCenter(col, row int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(col) + 0.5) * v.Scale,
		Y: (float64(row) + 0.5) * v.Scale * v.Aspect,
	}
}

// ToCell returns the field-relative cell containing p, clamped to the field area
func (v Viewport) ToCell(p vmath.Vec2) (col, row int) {
	col = int(math.Floor(p.X / v.Scale))
	row = int(math.Floor(p.Y / (v.Scale * v.Aspect)))
	col = max(0, min(col, v.FieldCols()-1))
	row = max(0, min(row, v.FieldRows()-1))
	return col, row
}

// ToScreen converts a field-relative cell to screen coordinates
func (v Viewport) ToScreen(col, row int) (x, y int) {
	return col + v.OffsetX, row + v.OffsetY
}
