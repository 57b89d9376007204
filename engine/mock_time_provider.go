package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// After never blocks: it advances the mock time by d and returns an already-fired channel
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	waits       []time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// After records the wait, advances time by d and fires immediately
func (m *MockTimeProvider) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(d)
	m.waits = append(m.waits, d)
	now := m.currentTime
	m.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Waits returns every duration passed to After, in call order
func (m *MockTimeProvider) Waits() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.waits...)
}
