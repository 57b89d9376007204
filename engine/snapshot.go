package engine

import (
	"image/color"

	"github.com/lixenwraith/robot-soccer/physics"
	"github.com/lixenwraith/robot-soccer/vmath"
)

// BallState is an immutable copy of a ball for presenters
type BallState struct {
	Pos    vmath.Vec2
	Radius float64
	Speed  float64
	Color  color.RGBA
	Role   physics.Role
}

// Snapshot is the state published after each tick
// Published snapshots are never mutated; readers may hold them indefinitely
type Snapshot struct {
	Tick       uint64
	Balls      []BallState
	Goal       physics.Goal
	Outcome    Outcome
	Collisions int // pairs separated during this tick
}

// Message returns the end message, empty while running
func (s *Snapshot) Message() string {
	return s.Outcome.Message()
}

// Player returns the player ball state
func (s *Snapshot) Player() BallState {
	return s.Balls[0]
}

// SnapshotSource is read by presenters on the UI goroutine
type SnapshotSource interface {
	Snapshot() *Snapshot
}

func newSnapshot(tick uint64, balls []*physics.Ball, goal physics.Goal, outcome Outcome, collisions int) *Snapshot {
	states := make([]BallState, len(balls))
	for i, b := range balls {
		states[i] = BallState{
			Pos:    b.Pos,
			Radius: b.Radius,
			Speed:  b.Speed,
			Color:  b.Color,
			Role:   b.Role,
		}
	}
	return &Snapshot{
		Tick:       tick,
		Balls:      states,
		Goal:       goal,
		Outcome:    outcome,
		Collisions: collisions,
	}
}
