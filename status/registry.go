package status

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyTicks       = "sim.ticks"
	KeyCollisions  = "sim.collisions"
	KeyOutcome     = "sim.outcome"
	KeyPlayerSpeed = "player.speed"
)

// Registry is the central metrics facade
// The simulation caches pointers at construction; the status bar reads them every frame
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Format renders all metrics as "key=value" pairs sorted by key
func (r *Registry) Format() string {
	pairs := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		pairs = append(pairs, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		pairs = append(pairs, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		if s := v.Load(); s != "" {
			pairs = append(pairs, fmt.Sprintf("%s=%q", k, s))
		}
	})
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
