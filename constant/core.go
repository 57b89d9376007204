package constant

import "time"

// Field dimensions in field units (pixels in the window backend)
const (
	FieldWidth  = 400.0
	FieldHeight = 600.0
)

// Goal rectangle, centered on the top edge of the field
const (
	GoalCenterX = FieldWidth / 2
	GoalCenterY = 0.0
	GoalWidth   = 100.0
	GoalHeight  = 100.0
)

// BallCount is the fixed size of the ball collection: one player, three enemies
const BallCount = 4

// PlayerIndex is the slot of the distinguished player ball
const PlayerIndex = 0

// TickInterval is the pause between simulation ticks
const TickInterval = 10 * time.Millisecond

// End messages, shown verbatim by every presenter
const (
	MessageGoal      = "GOAL"
	MessageExhausted = "Oh no... try again"
)
