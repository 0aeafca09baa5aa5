package world

import (
	"sync"
	"time"

	"github.com/lixenwraith/freefall/parameter"
)

// Clock supplies wall time for the session timer
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock
type SystemClock struct{}

// NewSystemClock creates a clock backed by time.Now
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manual clock for tests, measured as elapsed time from a fixed origin
// Step moves it in frame ticks so timer tests line up with Session.Tick calls
type MockClock struct {
	mu      sync.Mutex
	origin  time.Time
	elapsed time.Duration
	tick    time.Duration
}

// NewMockClock creates a clock at origin stepping FrameUpdateInterval per tick
func NewMockClock(origin time.Time) *MockClock {
	return &MockClock{
		origin: origin,
		tick:   parameter.FrameUpdateInterval,
	}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.origin.Add(m.elapsed)
}

// Step advances the clock by n frame ticks
func (m *MockClock) Step(n int) {
	m.Advance(time.Duration(n) * m.tick)
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed += d
}

// SetElapsed places the clock d after its origin
func (m *MockClock) SetElapsed(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed = d
}

// Elapsed returns the time since the origin
func (m *MockClock) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}
