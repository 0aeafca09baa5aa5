package world

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/physics"
	"github.com/lixenwraith/freefall/vmath"
)

// Player is a body with its display identity
type Player struct {
	Body  *physics.Body
	Name  string
	Color colorful.Color
}

// PlayerStyle fixes a player's name and optionally its color
// A nil Color picks a random hue every session
type PlayerStyle struct {
	Name  string
	Color *colorful.Color
}

// DefaultStyles returns the stock names with random colors
func DefaultStyles() [2]PlayerStyle {
	return [2]PlayerStyle{
		{Name: parameter.PlayerOneName},
		{Name: parameter.PlayerTwoName},
	}
}

func newPlayer(style PlayerStyle, x float64, rng vmath.Source) *Player {
	color := colorful.Hsl(rng.Float64()*360, parameter.PlayerSaturation, parameter.PlayerLightness)
	if style.Color != nil {
		color = *style.Color
	}
	return &Player{
		Body:  physics.NewBody(x, 0),
		Name:  style.Name,
		Color: color,
	}
}
