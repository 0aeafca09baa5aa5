package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
)

const eps = 1e-9

func TestIntegrateSingleTickFromRest(t *testing.T) {
	b := NewBody(100, 0)
	b.Integrate()

	if b.Vel.Y != 0.2 {
		t.Errorf("Expected vy=0.2, got %v", b.Vel.Y)
	}
	if b.Pos.Y != 0.2 {
		t.Errorf("Expected y=0.2, got %v", b.Pos.Y)
	}
	if b.Vel.X != 0 || b.Pos.X != 100 {
		t.Errorf("Expected horizontal state unchanged, got x=%v vx=%v", b.Pos.X, b.Vel.X)
	}
}

func TestIntegrateGravityUntilTerminalVelocity(t *testing.T) {
	b := NewBody(100, 0)
	reached := false

	for i := 0; i < 100; i++ {
		prev := b.Vel.Y
		b.Integrate()

		want := prev + parameter.Gravity
		if want > parameter.TerminalVelocity {
			want = parameter.TerminalVelocity
			reached = true
		}
		if b.Vel.Y != want {
			t.Fatalf("tick %d: expected vy=%v, got %v", i, want, b.Vel.Y)
		}
	}

	if !reached {
		t.Fatal("Expected terminal velocity to be reached within 100 ticks")
	}
	if b.Vel.Y != parameter.TerminalVelocity {
		t.Errorf("Expected vy to hold at %v, got %v", parameter.TerminalVelocity, b.Vel.Y)
	}
}

func TestIntegrateCapIsOneSided(t *testing.T) {
	b := NewBody(100, 0)
	b.Vel.Y = -20
	b.Integrate()

	if math.Abs(b.Vel.Y+19.8) > eps {
		t.Errorf("Expected upward velocity to stay uncapped at -19.8, got %v", b.Vel.Y)
	}

	b.Vel.Y = 50
	b.Integrate()
	if b.Vel.Y != parameter.TerminalVelocity {
		t.Errorf("Expected downward velocity capped to %v, got %v", parameter.TerminalVelocity, b.Vel.Y)
	}
}

func TestIntegrateFrictionAfterMove(t *testing.T) {
	b := NewBody(100, 0)
	b.Vel.X = 10
	b.Integrate()

	if b.Pos.X != 110 {
		t.Errorf("Expected move with undamped vx to x=110, got %v", b.Pos.X)
	}
	if math.Abs(b.Vel.X-9.8) > eps {
		t.Errorf("Expected vx damped to 9.8, got %v", b.Vel.X)
	}
}

func TestBounceWalls(t *testing.T) {
	b := NewBody(5, 0)
	b.Vel.X = -4
	if !b.BounceWalls(400) {
		t.Fatal("Expected left wall hit")
	}
	if b.Pos.X != b.Radius() || b.Vel.X != 2 {
		t.Errorf("Expected x=%v vx=2, got x=%v vx=%v", b.Radius(), b.Pos.X, b.Vel.X)
	}

	b.Pos.X = 395
	b.Vel.X = 6
	if !b.BounceWalls(400) {
		t.Fatal("Expected right wall hit")
	}
	if b.Pos.X != 380 || b.Vel.X != -3 {
		t.Errorf("Expected x=380 vx=-3, got x=%v vx=%v", b.Pos.X, b.Vel.X)
	}

	b.Pos.X = 200
	if b.BounceWalls(400) {
		t.Error("Expected no wall hit in the middle")
	}
}

func TestConfineWallsStops(t *testing.T) {
	b := NewBody(-30, 0)
	b.Vel.X = -4
	b.ConfineWalls(400)
	if b.Pos.X != b.Radius() || b.Vel.X != 0 {
		t.Errorf("Expected x=%v vx=0, got x=%v vx=%v", b.Radius(), b.Pos.X, b.Vel.X)
	}

	b.Pos.X = 1000
	b.Vel.X = 3
	b.ConfineWalls(400)
	if b.Pos.X != 380 || b.Vel.X != 0 {
		t.Errorf("Expected x=380 vx=0, got x=%v vx=%v", b.Pos.X, b.Vel.X)
	}
}

func TestTrackStuckReleasesAfter63Ticks(t *testing.T) {
	b := NewBody(100, 100)
	for i := 1; i <= 62; i++ {
		b.contact = 7
		if _, ok := b.TrackStuck(); ok {
			t.Fatalf("Expected no release at tick %d", i)
		}
	}
	if b.StuckTime() != 62*parameter.StuckTickIncrement {
		t.Errorf("Expected stuck time %v, got %v", 62*parameter.StuckTickIncrement, b.StuckTime())
	}

	b.contact = 7
	id, ok := b.TrackStuck()
	if !ok || id != 7 {
		t.Fatalf("Expected release of obstacle 7 at tick 63, got id=%d ok=%v", id, ok)
	}
	if b.StuckTime() != 0 {
		t.Errorf("Expected stuck time reset, got %v", b.StuckTime())
	}
}

func TestTrackStuckResetsInstantly(t *testing.T) {
	b := NewBody(100, 100)
	b.contact = 3
	for i := 0; i < 10; i++ {
		b.TrackStuck()
	}
	if b.StuckTime() == 0 {
		t.Fatal("Expected stuck time to accumulate")
	}

	// Fast while touching
	b.Vel = vmath.Vec2{X: 0, Y: parameter.StuckSpeedThreshold}
	b.TrackStuck()
	if b.StuckTime() != 0 {
		t.Errorf("Expected reset when moving fast, got %v", b.StuckTime())
	}

	// Slow without contact
	b.Vel = vmath.Vec2{}
	b.TrackStuck()
	b.ClearContact()
	b.TrackStuck()
	if b.StuckTime() != 0 {
		t.Errorf("Expected reset without contact, got %v", b.StuckTime())
	}
}
