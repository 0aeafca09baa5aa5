package parameter

// Terminal Projection
// Terminal cells are roughly twice as tall as wide
const (
	// CellWidthUnits is world units per terminal column
	CellWidthUnits = 10.0

	// CellHeightUnits is world units per terminal row
	CellHeightUnits = 20.0

	// BodyGlyph fills cells covered by a body
	BodyGlyph = '●'

	// ObstacleGlyph fills cells covered by an obstacle
	ObstacleGlyph = '█'
)
