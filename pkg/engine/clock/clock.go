// Package clock provides wall and game time sources.
package clock

import "time"

// TimeProvider is anything that can report the current time
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the real monotonic clock
type SystemTime struct{}

// Now returns time.Now()
func (SystemTime) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a mock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
