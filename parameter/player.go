package parameter

// Player Defaults
const (
	PlayerOneName = "Romim"
	PlayerTwoName = "Player2"

	// PlayerSaturation and PlayerLightness fix the HSL color, hue is random per session
	PlayerSaturation = 0.7
	PlayerLightness  = 0.5
)
