package parameter

// Body Integration
// Units are world units and ticks, one tick per rendered frame
const (
	// Gravity is added to vertical velocity every tick
	Gravity = 0.2

	// TerminalVelocity caps downward velocity only, upward speed is never limited
	TerminalVelocity = 8.0

	// AirFriction damps horizontal velocity after the position update
	AirFriction = 0.98

	// WallBounce scales horizontal velocity when Integrate pushes a body off a wall
	WallBounce = -0.5
)

// Body Shape
const (
	BodyRadius = 20.0
	BodyMass   = 1.0
)

// Obstacle Contact
const (
	// SlideBoost is the constant push along the downhill tangent on every obstacle contact
	SlideBoost = 0.2

	// BodyRestitution is the fraction of approach speed kept by body-body collisions
	BodyRestitution = 0.8
)

// Stuck Release
const (
	// StuckSpeedThreshold is the speed under which a touching body counts as stuck
	StuckSpeedThreshold = 0.5

	// StuckTickIncrement is simulated ms added per stuck tick, fixed regardless of frame time
	StuckTickIncrement = 16.0

	// StuckReleaseTime collapses the touched obstacle once exceeded (simulated ms)
	StuckReleaseTime = 1000.0
)
