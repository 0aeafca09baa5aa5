package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbObstacle   = tcell.NewRGBColor(85, 85, 85)    // #555 slab
	RgbLabel      = tcell.NewRGBColor(255, 255, 255) // White player names
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbOverlay    = tcell.NewRGBColor(255, 255, 255) // White overlay text
	RgbOverlayBg  = tcell.NewRGBColor(0, 0, 0)       // Black overlay box
	RgbLeader     = tcell.NewRGBColor(255, 215, 0)   // Gold leader marker
)

// PlayerColor converts a player color to a terminal color
func PlayerColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
