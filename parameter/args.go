package parameter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrArgCount  = errors.New("wrong number of arguments")
	ErrNotNumber = errors.New("argument is not a number")
	ErrNegative  = errors.New("argument is negative")
	ErrNotFinite = errors.New("argument is not finite")
)

// ArgNames lists the positional arguments in order
var ArgNames = [...]string{
	"playerRadius",
	"enemyRadius",
	"playerSpeed",
	"enemySpeed",
	"frictionPerTick",
}

// Params are the physics magnitudes fixed for the lifetime of a run
type Params struct {
	PlayerRadius float64
	EnemyRadius  float64
	PlayerSpeed  float64
	EnemySpeed   float64
	Friction     float64
}

// ParseArgs validates the positional arguments and returns the run parameters
// All five are required and must be finite and non-negative
func ParseArgs(args []string) (Params, error) {
	if len(args) != len(ArgNames) {
		return Params{}, fmt.Errorf("%w: there must be %d arguments, got %d", ErrArgCount, len(ArgNames), len(args))
	}

	var values [len(ArgNames)]float64
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %s=%q", ErrNotNumber, ArgNames[i], raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Params{}, fmt.Errorf("%w: %s=%q", ErrNotFinite, ArgNames[i], raw)
		}
		if v < 0 {
			return Params{}, fmt.Errorf("%w: %s=%v, no values should be negative", ErrNegative, ArgNames[i], v)
		}
		values[i] = v
	}

	return Params{
		PlayerRadius: values[0],
		EnemyRadius:  values[1],
		PlayerSpeed:  values[2],
		EnemySpeed:   values[3],
		Friction:     values[4],
	}, nil
}

func (p Params) String() string {
	return fmt.Sprintf("playerRadius=%g enemyRadius=%g playerSpeed=%g enemySpeed=%g friction=%g",
		p.PlayerRadius, p.EnemyRadius, p.PlayerSpeed, p.EnemySpeed, p.Friction)
}
