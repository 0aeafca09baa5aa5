package parameter

// Camera follow
const (
	// CameraLeadFraction places the leading body this fraction of the viewport below the top edge
	CameraLeadFraction = 1.0 / 3.0

	// CullMargin extends the visible band above and below the viewport for obstacle snapshots
	CullMargin = 100.0
)
