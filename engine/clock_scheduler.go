package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/robot-soccer/core"
)

// ErrTickLimit is returned when a run reaches the configured tick cap without an outcome
var ErrTickLimit = errors.New("tick limit reached")

// ClockScheduler drives a Simulation on a fixed tick
// Physics advances on the scheduler goroutine; presenters are notified through a render request channel
type ClockScheduler struct {
	sim          *Simulation
	timeProvider TimeProvider

	// Tick configuration
	tickInterval time.Duration
	maxTicks     uint64 // 0 = unlimited

	// Render requests, capacity 1, dropped when the presenter has not consumed the previous one
	frameReady chan struct{}

	// Counters for diagnostics
	tickCount    atomic.Uint64
	droppedCount atomic.Uint64

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
	outcome  Outcome
	err      error
}

// NewClockScheduler creates a scheduler and returns it with the render request channel (receive side)
func NewClockScheduler(sim *Simulation, tp TimeProvider, tickInterval time.Duration, maxTicks uint64) (*ClockScheduler, <-chan struct{}) {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	frameReady := make(chan struct{}, 1)
	cs := &ClockScheduler{
		sim:          sim,
		timeProvider: tp,
		tickInterval: tickInterval,
		maxTicks:     maxTicks,
		frameReady:   frameReady,
		done:         make(chan struct{}),
	}
	return cs, frameReady
}

// Run executes ticks until the simulation reaches an outcome, the tick cap is hit or ctx is cancelled
// Each tick is followed by a render request and one tick interval of pacing
func (cs *ClockScheduler) Run(ctx context.Context) (Outcome, error) {
	// Let presenters draw the starting line-up
	cs.requestFrame()

	for {
		if o := cs.sim.Outcome(); o.Terminal() {
			return o, nil
		}
		if err := ctx.Err(); err != nil {
			return OutcomeNone, err
		}
		if cs.maxTicks > 0 && cs.tickCount.Load() >= cs.maxTicks {
			return OutcomeNone, ErrTickLimit
		}

		cs.sim.Step()
		cs.tickCount.Add(1)
		cs.requestFrame()

		select {
		case <-cs.timeProvider.After(cs.tickInterval):
		case <-ctx.Done():
			return OutcomeNone, ctx.Err()
		}
	}
}

// Start runs the scheduler on its own goroutine, the result is available once Done is closed
func (cs *ClockScheduler) Start(ctx context.Context) {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	// Use core.Go for safe execution with centralized crash handling
	core.Go(func() {
		o, err := cs.Run(ctx)
		cs.outcome, cs.err = o, err
		cs.doneOnce.Do(func() { close(cs.done) })
	})
}

// Done is closed when a started scheduler has finished
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.done
}

// Result returns the outcome of a started scheduler, blocking until Done
func (cs *ClockScheduler) Result() (Outcome, error) {
	<-cs.done
	return cs.outcome, cs.err
}

// TickCount returns the number of ticks executed by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// DroppedFrames returns the render requests dropped because the presenter was busy
func (cs *ClockScheduler) DroppedFrames() uint64 {
	return cs.droppedCount.Load()
}

// requestFrame signals the presenter without waiting for it
func (cs *ClockScheduler) requestFrame() {
	select {
	case cs.frameReady <- struct{}{}:
	default:
		cs.droppedCount.Add(1)
	}
}
