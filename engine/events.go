package engine

// EventType identifies an input event delivered to the game loop
type EventType int

const (
	// EventStart starts a race, or restarts one from the end screen
	EventStart EventType = iota
	// EventQuit stops the loop
	EventQuit
	// EventResize carries a new viewport size in world units
	EventResize
)

// Event is a translated input event
type Event struct {
	Type   EventType
	Width  float64
	Height float64
}
