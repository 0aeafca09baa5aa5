package physics

import (
	"math"

	"github.com/lixenwraith/freefall/vmath"
)

// Contact describes a circle overlapping an obstacle
type Contact struct {
	// Normal is the world-space unit vector from the obstacle surface toward the body center
	Normal vmath.Vec2
	// Distance is from the body center to the closest point on the rectangle
	Distance float64
	// Depth is radius minus Distance
	Depth float64
}

// ObstacleContact tests body b against obstacle o without mutating either
// The body center is mapped into the obstacle's unrotated frame and compared
// with the closest point of the axis-aligned rectangle there
func ObstacleContact(b *Body, o *Obstacle) (Contact, bool) {
	local := vmath.ToLocal(b.Pos, o.Center(), o.angle)
	closest := vmath.ClosestPointOnBox(local, o.width/2, o.height/2)
	diff := vmath.V2Sub(local, closest)

	distSq := vmath.V2MagSq(diff)
	if !vmath.Finite(distSq) || distSq >= b.radius*b.radius {
		return Contact{}, false
	}

	dist := math.Sqrt(distSq)
	// Center inside the rectangle: push toward local up
	normal := vmath.Vec2{X: 0, Y: -1}
	if dist > 0 {
		normal = vmath.V2Normalize(diff)
	}

	return Contact{
		Normal:   vmath.V2Rotate(normal, o.angle),
		Distance: dist,
		Depth:    b.radius - dist,
	}, true
}

// ResolveObstacle pushes b out of o and applies the obstacle slide response
// The obstacle is immovable and takes the full correction. Returns true on contact
func ResolveObstacle(b *Body, o *Obstacle) bool {
	c, ok := ObstacleContact(b, o)
	if !ok {
		return false
	}

	prev := *b

	b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(c.Normal, c.Depth))
	b.Vel = respond(b.Vel, c.Normal, ObstacleSlide)
	b.contact = o.id

	if !b.finite() {
		restore(b, prev)
		return false
	}
	return true
}

// respond removes (1+restitution) of the normal velocity component for an approaching body
// and adds the profile's boost along the tangent whose Y is non-negative
func respond(vel, normal vmath.Vec2, p ContactProfile) vmath.Vec2 {
	dot := vmath.V2Dot(vel, normal)
	vel = vmath.V2Sub(vel, vmath.V2Scale(normal, (1+p.Restitution)*dot))

	if p.TangentBoost != 0 {
		tangent := vmath.V2Perpendicular(normal)
		if tangent.Y < 0 {
			tangent = vmath.V2Scale(tangent, -1)
		}
		vel = vmath.V2Add(vel, vmath.V2Scale(tangent, p.TangentBoost))
	}
	return vel
}

// ResolveBodies separates two overlapping bodies equally along the line of centers
// and exchanges an impulse with BodyBounce restitution unless they are already separating
// Coincident centers use the +X axis as normal, so a moves left and b right
func ResolveBodies(a, b *Body) bool {
	d := vmath.V2Sub(b.Pos, a.Pos)
	dist := vmath.V2Mag(d)
	minDist := a.radius + b.radius
	if dist >= minDist {
		return false
	}

	prevA, prevB := *a, *b

	normal := vmath.Vec2{X: 1, Y: 0}
	if dist > 0 {
		normal = vmath.V2Normalize(d)
	}

	sep := vmath.V2Scale(normal, (minDist-dist)*0.5)
	a.Pos = vmath.V2Sub(a.Pos, sep)
	b.Pos = vmath.V2Add(b.Pos, sep)

	velAlongNormal := vmath.V2Dot(vmath.V2Sub(b.Vel, a.Vel), normal)
	if velAlongNormal < 0 {
		j := -(1 + BodyBounce.Restitution) * velAlongNormal
		j /= 1/a.mass + 1/b.mass

		impulse := vmath.V2Scale(normal, j)
		a.Vel = vmath.V2Sub(a.Vel, vmath.V2Scale(impulse, 1/a.mass))
		b.Vel = vmath.V2Add(b.Vel, vmath.V2Scale(impulse, 1/b.mass))
	}

	if !a.finite() || !b.finite() {
		restore(a, prevA)
		restore(b, prevB)
		return false
	}
	return true
}

// restore rolls a body back to its pre-resolution state and stops it
func restore(b *Body, prev Body) {
	*b = prev
	b.Vel = vmath.Vec2{}
}
