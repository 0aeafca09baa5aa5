package physics

import (
	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
)

// Body is a falling circle integrated once per tick with explicit Euler
// Radius, mass and friction are fixed at construction
type Body struct {
	// Pos is the circle center in world units, Y grows downward
	Pos vmath.Vec2
	// Vel is in world units per tick
	Vel vmath.Vec2

	radius   float64
	mass     float64
	friction float64

	// stuckTime is simulated ms spent slow while touching an obstacle
	stuckTime float64
	// contact is the ID of the last obstacle resolved this tick, 0 when none
	contact uint64
}

// NewBody creates a body at rest at (x, y) with the standard radius, mass and friction
func NewBody(x, y float64) *Body {
	return &Body{
		Pos:      vmath.Vec2{X: x, Y: y},
		radius:   parameter.BodyRadius,
		mass:     parameter.BodyMass,
		friction: parameter.AirFriction,
	}
}

func (b *Body) Radius() float64 { return b.radius }

func (b *Body) Mass() float64 { return b.mass }

// StuckTime returns accumulated stuck time in simulated ms
func (b *Body) StuckTime() float64 { return b.stuckTime }

// Contact returns the ID of the obstacle the body touched this tick, 0 when none
func (b *Body) Contact() uint64 { return b.contact }

// ClearContact forgets the obstacle touched on the previous tick
func (b *Body) ClearContact() { b.contact = 0 }

// Integrate applies gravity with a one-sided terminal velocity cap, moves the body,
// then damps horizontal velocity
func (b *Body) Integrate() {
	b.Vel.Y += parameter.Gravity
	if b.Vel.Y > parameter.TerminalVelocity {
		b.Vel.Y = parameter.TerminalVelocity
	}

	b.Pos = vmath.V2Add(b.Pos, b.Vel)

	// Damping after the move, so this tick's displacement uses the undamped velocity
	b.Vel.X *= b.friction
}

// finite reports whether position and velocity are free of NaN and Inf
func (b *Body) finite() bool {
	return vmath.V2Finite(b.Pos) && vmath.V2Finite(b.Vel)
}
