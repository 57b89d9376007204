package physics

import (
	"image/color"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/vmath"
)

// Role distinguishes the player ball from its pursuers
type Role uint8

const (
	RolePlayer Role = iota
	RoleEnemy
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Ball is a circular entity moving in straight lines at a decaying speed
type Ball struct {
	Pos    vmath.Vec2
	Radius float64
	Speed  float64
	Color  color.RGBA
	Role   Role
}

// NewBall creates a ball at (x, y)
func NewBall(x, y, radius, speed float64, c color.RGBA, role Role) *Ball {
	return &Ball{
		Pos:    vmath.Vec2{X: x, Y: y},
		Radius: radius,
		Speed:  speed,
		Color:  c,
		Role:   role,
	}
}

// MoveToward advances the ball by Speed along the line to (tx, ty) and clamps it into the field
// A ball already sitting on its target has no direction and stays put
func (b *Ball) MoveToward(tx, ty float64) {
	delta := vmath.V2Sub(vmath.Vec2{X: tx, Y: ty}, b.Pos)
	dist := vmath.V2Mag(delta)
	if dist == 0 {
		return
	}

	// Unit direction first: Speed/dist can overflow to Inf, and 0*Inf is NaN on an aligned axis
	dir := vmath.V2Scale(delta, 1/dist)
	next := vmath.V2Add(b.Pos, vmath.V2Scale(dir, b.Speed))
	b.Pos.X = vmath.Clamp(next.X, b.Radius, constant.FieldWidth-b.Radius)
	b.Pos.Y = vmath.Clamp(next.Y, b.Radius, constant.FieldHeight-b.Radius)
}

// ApplyFriction lowers Speed by friction, never below zero
func (b *Ball) ApplyFriction(friction float64) {
	b.Speed -= friction
	if b.Speed < 0 {
		b.Speed = 0
	}
}

// InsideGoal reports whether the whole circle lies strictly within the goal
// Touching any goal edge counts as outside
func (b *Ball) InsideGoal(g Goal) bool {
	left, top, right, bottom := g.Bounds()
	return b.Pos.X-b.Radius > left &&
		b.Pos.X+b.Radius < right &&
		b.Pos.Y-b.Radius > top &&
		b.Pos.Y+b.Radius < bottom
}
