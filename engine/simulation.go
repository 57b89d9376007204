package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/parameter"
	"github.com/lixenwraith/robot-soccer/physics"
	"github.com/lixenwraith/robot-soccer/status"
)

// Simulation owns the balls, the goal and the outcome of one run
// Step must be called from a single goroutine; Snapshot and Outcome are safe from any goroutine
type Simulation struct {
	balls    []*physics.Ball
	goal     physics.Goal
	friction float64
	tick     uint64

	outcome  atomic.Int32
	snapshot atomic.Pointer[Snapshot]

	// Cached metric pointers
	statTicks      *atomic.Int64
	statCollisions *atomic.Int64
	statSpeed      *status.AtomicFloat
	statOutcome    *status.AtomicString
}

// NewBalls builds the starting line-up: the player in the bottom-left corner, three enemies spread across the field
func NewBalls(p parameter.Params) []*physics.Ball {
	return []*physics.Ball{
		physics.NewBall(0, constant.FieldHeight, p.PlayerRadius, p.PlayerSpeed, constant.ColorPlayer, physics.RolePlayer),
		physics.NewBall(constant.FieldWidth*0.25, 40, p.EnemyRadius, p.EnemySpeed, constant.ColorEnemy, physics.RoleEnemy),
		physics.NewBall(constant.FieldWidth*0.75, 40, p.EnemyRadius, p.EnemySpeed, constant.ColorEnemy, physics.RoleEnemy),
		physics.NewBall(constant.FieldWidth/2, constant.FieldHeight/2, p.EnemyRadius, p.EnemySpeed, constant.ColorEnemy, physics.RoleEnemy),
	}
}

// NewSimulation creates a run with the standard line-up and goal
func NewSimulation(p parameter.Params, reg *status.Registry) *Simulation {
	return NewSimulationWithBalls(NewBalls(p), physics.DefaultGoal(), p.Friction, reg)
}

// NewSimulationWithBalls creates a run over an arbitrary line-up, balls[0] is the player
// reg may be nil
func NewSimulationWithBalls(balls []*physics.Ball, goal physics.Goal, friction float64, reg *status.Registry) *Simulation {
	if len(balls) == 0 {
		panic("engine: simulation needs a player ball")
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	s := &Simulation{
		balls:          balls,
		goal:           goal,
		friction:       friction,
		statTicks:      reg.Ints.Get(status.KeyTicks),
		statCollisions: reg.Ints.Get(status.KeyCollisions),
		statSpeed:      reg.Floats.Get(status.KeyPlayerSpeed),
		statOutcome:    reg.Strings.Get(status.KeyOutcome),
	}
	s.statSpeed.Set(balls[constant.PlayerIndex].Speed)
	s.publish(0)
	return s
}

// Step advances one tick and returns the outcome
// Once the outcome is terminal Step is a no-op
func (s *Simulation) Step() Outcome {
	if o := s.Outcome(); o.Terminal() {
		return o
	}

	// Sequential update: enemies chase the player's position after its own move this tick
	player := s.balls[constant.PlayerIndex]
	for i, b := range s.balls {
		b.ApplyFriction(s.friction)
		if i == constant.PlayerIndex {
			b.MoveToward(s.goal.Center.X, s.goal.Center.Y)
		} else {
			b.MoveToward(player.Pos.X, player.Pos.Y)
		}
	}

	collisions := physics.ResolveCollisions(s.balls)
	s.tick++

	if o := EvaluateOutcome(player, s.goal); o.Terminal() {
		if s.outcome.CompareAndSwap(int32(OutcomeNone), int32(o)) {
			s.statOutcome.Store(o.Message())
			log.Printf("simulation: %s after %d ticks (player speed %.3f at %.1f,%.1f)",
				o, s.tick, player.Speed, player.Pos.X, player.Pos.Y)
		}
	}

	s.statTicks.Store(int64(s.tick))
	s.statSpeed.Set(player.Speed)
	if collisions > 0 {
		s.statCollisions.Add(int64(collisions))
	}

	s.publish(collisions)
	return s.Outcome()
}

// EvaluateOutcome decides whether the player's run is over
// An exhausted player loses even when it stopped inside the goal
func EvaluateOutcome(player *physics.Ball, goal physics.Goal) Outcome {
	if player.Speed <= 0 {
		return OutcomeExhausted
	}
	if player.InsideGoal(goal) {
		return OutcomeGoal
	}
	return OutcomeNone
}

// Outcome returns the current outcome
func (s *Simulation) Outcome() Outcome {
	return Outcome(s.outcome.Load())
}

// Snapshot returns the most recently published state, never nil
func (s *Simulation) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Tick returns the number of completed ticks, only valid on the stepping goroutine
func (s *Simulation) Tick() uint64 {
	return s.tick
}

func (s *Simulation) publish(collisions int) {
	s.snapshot.Store(newSnapshot(s.tick, s.balls, s.goal, s.Outcome(), collisions))
}
