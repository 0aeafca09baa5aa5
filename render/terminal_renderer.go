package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
	"github.com/lixenwraith/freefall/world"
)

// TerminalRenderer rasterizes frames onto a tcell screen
// Each cell is filled when its center falls inside a shape
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer drawing to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Render draws the whole frame and shows it
func (r *TerminalRenderer) Render(f world.Frame) {
	cols, rows := r.screen.Size()
	playRows := rows - StatusRows
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.screen.Fill(' ', defaultStyle)

	for _, o := range f.Obstacles {
		r.drawObstacle(o, f.Camera, cols, playRows, defaultStyle)
	}
	for i, p := range f.Players {
		r.drawPlayer(p, i == f.Leader && f.Running, f.Camera, cols, playRows, defaultStyle)
	}

	r.drawStatusBar(f, cols, rows-1, defaultStyle)

	if !f.Running {
		r.drawOverlay(f, cols, playRows)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawObstacle(o world.ObstacleView, camera float64, cols, rows int, defaultStyle tcell.Style) {
	// Bounding box of the rotated corners, in cells
	minCol, minRow := math.MaxInt, math.MaxInt
	maxCol, maxRow := math.MinInt, math.MinInt
	for _, c := range o.Corners {
		col, row := ToCell(c, camera)
		minCol, maxCol = min(minCol, col), max(maxCol, col)
		minRow, maxRow = min(minRow, row), max(maxRow, row)
	}
	minCol, maxCol = max(minCol, 0), min(maxCol, cols-1)
	minRow, maxRow = max(minRow, 0), min(maxRow, rows-1)

	style := defaultStyle.Foreground(RgbObstacle)
	hw, hh := o.Width/2, o.Height/2
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			local := vmath.ToLocal(CellCenter(col, row, camera), o.Center, o.Angle)
			// Slabs are thinner than a cell row, widen the vertical test by half a row
			if math.Abs(local.X) <= hw && math.Abs(local.Y) <= hh+parameter.CellHeightUnits/2 {
				r.screen.SetContent(col, row, parameter.ObstacleGlyph, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawPlayer(p world.PlayerView, leader bool, camera float64, cols, rows int, defaultStyle tcell.Style) {
	minCol, minRow := ToCell(vmath.Vec2{X: p.Pos.X - p.Radius, Y: p.Pos.Y - p.Radius}, camera)
	maxCol, maxRow := ToCell(vmath.Vec2{X: p.Pos.X + p.Radius, Y: p.Pos.Y + p.Radius}, camera)

	style := defaultStyle.Foreground(PlayerColor(p.Color))
	rSq := p.Radius * p.Radius
	for row := max(minRow, 0); row <= min(maxRow, rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, cols-1); col++ {
			if vmath.V2MagSq(vmath.V2Sub(CellCenter(col, row, camera), p.Pos)) <= rSq {
				r.screen.SetContent(col, row, parameter.BodyGlyph, nil, style)
			}
		}
	}

	// Always mark the center cell so small bodies stay visible
	col, row := ToCell(p.Pos, camera)
	if col >= 0 && col < cols && row >= 0 && row < rows {
		r.screen.SetContent(col, row, parameter.BodyGlyph, nil, style)
	}

	label := p.Name
	labelStyle := defaultStyle.Foreground(RgbLabel)
	if leader {
		label = "▼ " + label
		labelStyle = defaultStyle.Foreground(RgbLeader)
	}
	labelRow := minRow - 1
	if labelRow >= 0 && labelRow < rows {
		r.drawText(col-len([]rune(label))/2, labelRow, label, labelStyle, cols)
	}
}

func (r *TerminalRenderer) drawStatusBar(f world.Frame, cols, row int, defaultStyle tcell.Style) {
	if row < 0 {
		return
	}
	style := defaultStyle.Foreground(RgbStatusBar)

	remaining := f.Remaining.Round(100 * time.Millisecond)
	text := fmt.Sprintf(" %s %.0f  |  %s %.0f  |  %s",
		f.Players[0].Name, f.Players[0].Pos.Y,
		f.Players[1].Name, f.Players[1].Pos.Y,
		remaining)
	if f.Running {
		text += fmt.Sprintf("  |  leading: %s", f.Players[f.Leader].Name)
	}
	r.drawText(0, row, text, style, cols)
}

func (r *TerminalRenderer) drawOverlay(f world.Frame, cols, rows int) {
	var lines []string
	switch {
	case f.Result == nil:
		lines = []string{"FREEFALL", "", "Click or press Enter to start", "Esc to quit"}
	case f.Result.Draw:
		lines = []string{"Game over!", "", "Draw!", "", "Click or press Enter to restart"}
	default:
		lines = []string{"Game over!", "", f.Result.Name + " wins!", "", "Click or press Enter to restart"}
	}

	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, len([]rune(l)))
	}
	boxWidth += 4
	boxHeight := len(lines) + 2

	x0 := (cols - boxWidth) / 2
	y0 := (rows - boxHeight) / 2
	boxStyle := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlay)

	for y := 0; y < boxHeight; y++ {
		for x := 0; x < boxWidth; x++ {
			if x0+x >= 0 && x0+x < cols && y0+y >= 0 && y0+y < rows {
				r.screen.SetContent(x0+x, y0+y, ' ', nil, boxStyle)
			}
		}
	}
	for i, l := range lines {
		r.drawText(x0+(boxWidth-len([]rune(l)))/2, y0+1+i, l, boxStyle, cols)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style, cols int) {
	for i, ch := range []rune(text) {
		if x+i >= 0 && x+i < cols {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}
