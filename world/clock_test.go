package world

import (
	"testing"
	"time"

	"github.com/lixenwraith/freefall/parameter"
)

func TestMockClock(t *testing.T) {
	clock := NewMockClock(testStart)
	if !clock.Now().Equal(testStart) || clock.Elapsed() != 0 {
		t.Errorf("Expected clock at origin %v, got %v", testStart, clock.Now())
	}

	clock.Step(3)
	if got := clock.Elapsed(); got != 3*parameter.FrameUpdateInterval {
		t.Errorf("Expected 3 ticks elapsed, got %v", got)
	}

	clock.Advance(time.Millisecond)
	if got := clock.Now().Sub(testStart); got != 3*parameter.FrameUpdateInterval+time.Millisecond {
		t.Errorf("Expected 3 ticks and 1ms elapsed, got %v", got)
	}

	clock.SetElapsed(time.Hour)
	if !clock.Now().Equal(testStart.Add(time.Hour)) {
		t.Errorf("Expected %v after SetElapsed, got %v", testStart.Add(time.Hour), clock.Now())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	clock := NewSystemClock()
	t1 := clock.Now()
	time.Sleep(time.Millisecond)
	if !clock.Now().After(t1) {
		t.Error("Expected system clock to advance")
	}
}
