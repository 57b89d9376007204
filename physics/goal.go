package physics

import (
	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/vmath"
)

// Goal is an axis-aligned rectangle described by its center and size
type Goal struct {
	Center vmath.Vec2
	W, H   float64
}

// DefaultGoal returns the fixed goal centered on the top edge of the field
func DefaultGoal() Goal {
	return Goal{
		Center: vmath.Vec2{X: constant.GoalCenterX, Y: constant.GoalCenterY},
		W:      constant.GoalWidth,
		H:      constant.GoalHeight,
	}
}

// Bounds returns the rectangle edges in field units
func (g Goal) Bounds() (left, top, right, bottom float64) {
	return g.Center.X - g.W/2, g.Center.Y - g.H/2, g.Center.X + g.W/2, g.Center.Y + g.H/2
}
