package physics

import (
	"github.com/lixenwraith/freefall/parameter"
)

// ContactProfile defines how velocity responds along and across a contact normal
// Profiles are pre-defined as package variables
type ContactProfile struct {
	// Restitution is the fraction of normal approach speed reflected, 0 = slide
	Restitution float64
	// TangentBoost is added along the downhill tangent on every contact
	TangentBoost float64
}

// ObstacleSlide kills normal velocity and nudges the body down the slope
var ObstacleSlide = ContactProfile{
	Restitution:  0,
	TangentBoost: parameter.SlideBoost,
}

// BodyBounce is the player-player elastic response
var BodyBounce = ContactProfile{
	Restitution:  parameter.BodyRestitution,
	TangentBoost: 0,
}
