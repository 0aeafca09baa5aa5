package world

import (
	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/physics"
	"github.com/lixenwraith/freefall/vmath"
)

// Generator produces obstacles at increasing heights below a moving frontier
type Generator struct {
	rng      vmath.Source
	frontier float64
	lastID   uint64
}

// NewGenerator creates a generator whose frontier starts at ObstacleFirstFrontier
func NewGenerator(rng vmath.Source) *Generator {
	return &Generator{
		rng:      rng,
		frontier: parameter.ObstacleFirstFrontier,
	}
}

// Frontier returns the Y of the most recently generated obstacle
func (g *Generator) Frontier() float64 {
	return g.frontier
}

// Next advances the frontier by a random spacing and places a new obstacle there
// using the current viewport width
func (g *Generator) Next(viewportWidth float64) *physics.Obstacle {
	g.frontier += vmath.Range(g.rng, parameter.ObstacleMinSpacing, parameter.ObstacleMaxSpacing)
	g.lastID++
	return physics.NewObstacle(g.lastID, g.frontier, viewportWidth, g.rng)
}
