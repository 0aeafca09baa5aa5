package physics

import (
	"math"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
)

// Obstacle is a static rectangle rotated about its center
// It is never mutated after construction
type Obstacle struct {
	id     uint64
	pos    vmath.Vec2 // top-left corner of the unrotated rectangle
	width  float64
	height float64
	angle  float64 // radians, positive turns clockwise on screen
}

// NewObstacleAt creates an obstacle with an explicit placement
func NewObstacleAt(id uint64, x, y, width, angle float64) *Obstacle {
	return &Obstacle{
		id:     id,
		pos:    vmath.Vec2{X: x, Y: y},
		width:  width,
		height: parameter.ObstacleHeight,
		angle:  angle,
	}
}

// NewObstacle creates a randomly sized and rotated obstacle at height y
// Horizontal placement is random within viewportWidth, then snapped flush to a wall
// whenever the rotated footprint would leave a gap narrower than ObstacleMinGap
// On narrow viewports the width is capped so one gap of ObstacleMinGap stays open;
// when even that cannot fit the obstacle spans the whole viewport
// viewportWidth is read here only; later resizes do not move existing obstacles
func NewObstacle(id uint64, y, viewportWidth float64, src vmath.Source) *Obstacle {
	width := vmath.Range(src, parameter.ObstacleMinWidth, parameter.ObstacleMaxWidth)
	x := src.Float64() * (viewportWidth - width)
	angle := vmath.DegToRad(vmath.Range(src, -parameter.ObstacleMaxAngleDeg, parameter.ObstacleMaxAngleDeg))

	sin, cos := math.Sincos(angle)
	limit := (viewportWidth - parameter.ObstacleMinGap - parameter.ObstacleHeight*math.Abs(sin)) / math.Abs(cos)
	if width > limit {
		if limit <= 0 {
			// Narrower than the shortest rotated obstacle: centered, it closes both gaps
			return NewObstacleAt(id, (viewportWidth-width)/2, y, width, angle)
		}
		width = limit
	}

	o := NewObstacleAt(id, x, y, width, angle)

	if left, _ := o.Span(); left < parameter.ObstacleMinGap {
		o.pos.X -= left
	}
	if _, right := o.Span(); viewportWidth-right < parameter.ObstacleMinGap {
		o.pos.X += viewportWidth - right
	}
	return o
}

func (o *Obstacle) ID() uint64 { return o.id }

func (o *Obstacle) X() float64 { return o.pos.X }

func (o *Obstacle) Y() float64 { return o.pos.Y }

func (o *Obstacle) Width() float64 { return o.width }

func (o *Obstacle) Height() float64 { return o.height }

func (o *Obstacle) Angle() float64 { return o.angle }

// Center returns the rotation pivot in world space
func (o *Obstacle) Center() vmath.Vec2 {
	return vmath.Vec2{X: o.pos.X + o.width/2, Y: o.pos.Y + o.height/2}
}

// Span returns the horizontal extent of the rotated footprint
func (o *Obstacle) Span() (minX, maxX float64) {
	sin, cos := math.Sincos(o.angle)
	half := o.width/2*math.Abs(cos) + o.height/2*math.Abs(sin)
	cx := o.pos.X + o.width/2
	return cx - half, cx + half
}

// Corners returns the rotated corners clockwise from the top-left
func (o *Obstacle) Corners() [4]vmath.Vec2 {
	c := o.Center()
	hw, hh := o.width/2, o.height/2
	local := [4]vmath.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	var out [4]vmath.Vec2
	for i, p := range local {
		out[i] = vmath.V2Add(c, vmath.V2Rotate(p, o.angle))
	}
	return out
}
