package physics

import (
	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
)

// BounceWalls clamps the body inside [radius, width-radius] and reflects
// horizontal velocity at half strength, returns true if a wall was hit
func (b *Body) BounceWalls(width float64) bool {
	return b.clampX(width, func(vx float64) float64 { return vx * parameter.WallBounce })
}

// ConfineWalls clamps the body inside [radius, width-radius] and stops horizontal motion
// Runs after obstacle resolution, which may push a body through a wall
func (b *Body) ConfineWalls(width float64) bool {
	return b.clampX(width, func(float64) float64 { return 0 })
}

func (b *Body) clampX(width float64, respond func(vx float64) float64) bool {
	hit := false
	if b.Pos.X-b.radius < 0 {
		b.Pos.X = b.radius
		b.Vel.X = respond(b.Vel.X)
		hit = true
	}
	if b.Pos.X+b.radius > width {
		b.Pos.X = width - b.radius
		b.Vel.X = respond(b.Vel.X)
		hit = true
	}
	return hit
}

// Speed returns the velocity magnitude
func (b *Body) Speed() float64 {
	return vmath.V2Mag(b.Vel)
}

// TrackStuck advances the stuck timer by a fixed step while the body is slow and touching
// an obstacle, and resets it otherwise. Once the timer passes the release time it returns
// the touched obstacle ID with ok=true and resets
func (b *Body) TrackStuck() (obstacleID uint64, ok bool) {
	if b.contact == 0 || b.Speed() >= parameter.StuckSpeedThreshold {
		b.stuckTime = 0
		return 0, false
	}

	b.stuckTime += parameter.StuckTickIncrement
	if b.stuckTime > parameter.StuckReleaseTime {
		b.stuckTime = 0
		return b.contact, true
	}
	return 0, false
}
