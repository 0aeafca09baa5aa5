package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units
// Y grows downward, matching screen rows
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector of v, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Rotate rotates v counter-clockwise in math convention by angle radians
// With Y pointing down this is a clockwise rotation on screen, the same as canvas rotate
func V2Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// V2Perpendicular returns v rotated by 90°: (-y, x)
func V2Perpendicular(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// V2Finite reports whether both components are neither NaN nor infinite
func V2Finite(v Vec2) bool {
	return Finite(v.X) && Finite(v.Y)
}

// Finite reports whether f is neither NaN nor ±Inf
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits f to [lo, hi]
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// ClosestPointOnBox returns the point of the origin-centered axis-aligned box with
// half extents (halfW, halfH) closest to p, each axis clamped independently
func ClosestPointOnBox(p Vec2, halfW, halfH float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, -halfW, halfW),
		Y: Clamp(p.Y, -halfH, halfH),
	}
}

// ToLocal maps world point p into the frame of a box centered at center and rotated by angle
func ToLocal(p, center Vec2, angle float64) Vec2 {
	return V2Rotate(V2Sub(p, center), -angle)
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
