package engine

import "github.com/lixenwraith/robot-soccer/constant"

// Outcome is the terminal state of a run; OutcomeNone while running
type Outcome int32

const (
	OutcomeNone Outcome = iota
	OutcomeGoal
	OutcomeExhausted
)

// Terminal reports whether the run has ended
func (o Outcome) Terminal() bool {
	return o != OutcomeNone
}

// Message returns the end message shown to the user, empty while running
func (o Outcome) Message() string {
	switch o {
	case OutcomeGoal:
		return constant.MessageGoal
	case OutcomeExhausted:
		return constant.MessageExhausted
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeGoal:
		return "Goal"
	case OutcomeExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}
