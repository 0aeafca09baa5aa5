package render

import (
	"math"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
)

// StatusRows is the number of terminal rows reserved below the playfield
const StatusRows = 1

// Viewport converts a terminal size in cells to the playfield size in world units
func Viewport(cols, rows int) (width, height float64) {
	playRows := max(rows-StatusRows, 1)
	return float64(cols) * parameter.CellWidthUnits, float64(playRows) * parameter.CellHeightUnits
}

// CellCenter returns the world point sampled for cell (col, row) under the given camera
func CellCenter(col, row int, camera float64) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(col) + 0.5) * parameter.CellWidthUnits,
		Y: camera + (float64(row)+0.5)*parameter.CellHeightUnits,
	}
}

// ToCell returns the cell containing world point p under the given camera
func ToCell(p vmath.Vec2, camera float64) (col, row int) {
	col = int(math.Floor(p.X / parameter.CellWidthUnits))
	row = int(math.Floor((p.Y - camera) / parameter.CellHeightUnits))
	return col, row
}
