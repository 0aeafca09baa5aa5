package world

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/freefall/physics"
	"github.com/lixenwraith/freefall/vmath"
)

// PlayerView is a read-only copy of a player for drawing
type PlayerView struct {
	Name   string
	Color  colorful.Color
	Pos    vmath.Vec2
	Radius float64
}

// ObstacleView is a read-only copy of an obstacle for drawing
type ObstacleView struct {
	ID      uint64
	Center  vmath.Vec2
	Width   float64
	Height  float64
	Angle   float64
	Corners [4]vmath.Vec2
}

// Result is the terminal signal of a finished session
type Result struct {
	// Winner is the index of the deeper player, -1 on a draw
	Winner int
	// Name is the winner's display name, empty on a draw
	Name   string
	Draw   bool
	Depths [2]float64
}

// Frame is the per-tick snapshot handed to rendering and audio
// Screen Y of a world point is world Y minus Camera
type Frame struct {
	Players   [2]PlayerView
	Obstacles []ObstacleView
	Camera    float64
	Width     float64
	Height    float64
	// Leader is the index of the player with greater Y, 1 on equal Y
	Leader    int
	Running   bool
	Remaining time.Duration
	Tick      uint64
	Result    *Result
}

func newObstacleView(o *physics.Obstacle) ObstacleView {
	return ObstacleView{
		ID:      o.ID(),
		Center:  o.Center(),
		Width:   o.Width(),
		Height:  o.Height(),
		Angle:   o.Angle(),
		Corners: o.Corners(),
	}
}

// Visible reports whether an obstacle at top y with the given height falls in the
// band [camera-margin, camera+viewportHeight+margin]
func Visible(y, height, camera, viewportHeight, margin float64) bool {
	return y+height+margin > camera && y-margin < camera+viewportHeight
}
