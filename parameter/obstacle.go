package parameter

// Obstacle Shape
const (
	ObstacleHeight   = 30.0
	ObstacleMinWidth = 100.0
	// ObstacleMaxWidth is exclusive
	ObstacleMaxWidth = 400.0

	// ObstacleMaxAngleDeg bounds rotation to [-ObstacleMaxAngleDeg, ObstacleMaxAngleDeg]
	ObstacleMaxAngleDeg = 30.0

	// ObstacleMinGap is the narrowest wall gap left open, player diameter plus margin
	// Anything narrower is closed by snapping the obstacle to that wall
	ObstacleMinGap = 60.0
)

// Obstacle Stream
const (
	// ObstacleFirstFrontier is the frontier before the first obstacle is placed
	ObstacleFirstFrontier = 200.0

	// ObstacleMinSpacing and ObstacleMaxSpacing bound the vertical step between obstacles, max exclusive
	ObstacleMinSpacing = 150.0
	ObstacleMaxSpacing = 350.0

	// ObstacleSeedCount is the lookahead buffer generated at session start
	ObstacleSeedCount = 50

	// ObstacleLookaheadScreens keeps the frontier this many viewport heights below the camera
	ObstacleLookaheadScreens = 2.0
)
