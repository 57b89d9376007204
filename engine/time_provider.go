package engine

import "time"

// TimeProvider supplies the current time and tick pacing to the scheduler
type TimeProvider interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// After waits for d on the system clock
func (p *MonotonicTimeProvider) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
