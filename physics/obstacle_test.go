package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
)

// scripted replays fixed values in order, then repeats the last one
type scripted struct {
	values []float64
	next   int
}

func (s *scripted) Float64() float64 {
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}

func TestNewObstacleDrawOrder(t *testing.T) {
	// width=100+0.5*300, x=0.5*(1000-250), angle=-30+0.5*60
	o := NewObstacle(1, 500, 1000, &scripted{values: []float64{0.5, 0.5, 0.5}})

	if o.Width() != 250 {
		t.Errorf("Expected width 250, got %v", o.Width())
	}
	if o.X() != 375 {
		t.Errorf("Expected x 375, got %v", o.X())
	}
	if o.Angle() != 0 {
		t.Errorf("Expected angle 0, got %v", o.Angle())
	}
	if o.Height() != parameter.ObstacleHeight || o.Y() != 500 || o.ID() != 1 {
		t.Errorf("Unexpected obstacle %+v", o)
	}
}

func TestNewObstacleSnapsNarrowGaps(t *testing.T) {
	left := NewObstacle(1, 0, 1000, &scripted{values: []float64{0, 0.01, 0.5}})
	if minX, _ := left.Span(); math.Abs(minX) > 1e-9 {
		t.Errorf("Expected snap to left wall, span starts at %v", minX)
	}

	right := NewObstacle(2, 0, 1000, &scripted{values: []float64{0, 0.99, 0.5}})
	if _, maxX := right.Span(); math.Abs(maxX-1000) > 1e-9 {
		t.Errorf("Expected snap to right wall, span ends at %v", maxX)
	}
}

func TestNewObstaclePassability(t *testing.T) {
	maxAngle := vmath.DegToRad(parameter.ObstacleMaxAngleDeg)

	for _, width := range []float64{70, 100, 300, 400, 450, 500, 600, 800, 1280} {
		rng := vmath.NewFastRand(99)
		for i := 0; i < 5000; i++ {
			o := NewObstacle(uint64(i+1), float64(i)*200, width, rng)

			if o.Width() <= 0 || o.Width() >= parameter.ObstacleMaxWidth {
				t.Fatalf("viewport %v, obstacle %d: width %v out of range", width, i, o.Width())
			}
			if math.Abs(o.Angle()) > maxAngle {
				t.Fatalf("viewport %v, obstacle %d: angle %v out of range", width, i, o.Angle())
			}

			minX, maxX := o.Span()
			for _, gap := range []float64{minX, width - maxX} {
				// Closed, or at least a body's diameter plus margin
				if gap < 1e-9 {
					continue
				}
				if gap < parameter.ObstacleMinGap-1e-9 {
					t.Fatalf("viewport %v, obstacle %d: gap %v narrower than %v (span [%v, %v])",
						width, i, gap, parameter.ObstacleMinGap, minX, maxX)
				}
			}
		}
	}
}

func TestNewObstacleCapsWidthOnNarrowViewport(t *testing.T) {
	// width=100+0.99*300, angle=0 on a 300 wide viewport
	o := NewObstacle(1, 0, 300, &scripted{values: []float64{0.99, 0.5, 0.5}})

	if got, want := o.Width(), 300-parameter.ObstacleMinGap; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected width capped to %v, got %v", want, got)
	}
	minX, maxX := o.Span()
	if math.Abs(minX) > 1e-9 || math.Abs(300-maxX-parameter.ObstacleMinGap) > 1e-9 {
		t.Errorf("Expected flush left with a %v gap on the right, got span [%v, %v]", parameter.ObstacleMinGap, minX, maxX)
	}
}

func TestNewObstacleClosesTinyViewport(t *testing.T) {
	o := NewObstacle(1, 0, 50, &scripted{values: []float64{0, 0.5, 1}})

	minX, maxX := o.Span()
	if minX > 0 || maxX < 50 {
		t.Errorf("Expected obstacle to span the whole viewport, got [%v, %v]", minX, maxX)
	}
	if o.Width() != parameter.ObstacleMinWidth {
		t.Errorf("Expected drawn width kept, got %v", o.Width())
	}
}

func TestObstacleCorners(t *testing.T) {
	o := NewObstacleAt(1, 100, 100, 200, vmath.DegToRad(30))
	for i, c := range o.Corners() {
		local := vmath.ToLocal(c, o.Center(), o.Angle())
		if math.Abs(math.Abs(local.X)-100) > 1e-9 || math.Abs(math.Abs(local.Y)-15) > 1e-9 {
			t.Errorf("corner %d not on rectangle: local %v", i, local)
		}
	}
	if c := o.Center(); c.X != 200 || c.Y != 115 {
		t.Errorf("Expected center (200, 115), got %v", c)
	}
}
