package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/world"
)

// Game drives one session tick per frame and feeds the renderer and mixer
// Session state is touched only from the goroutine running Run
type Game struct {
	session  *world.Session
	renderer Renderer
	mixer    AudioMixer
	frames   uint64
}

// NewGame wires a session to its collaborators; a nil mixer runs silent
func NewGame(session *world.Session, renderer Renderer, mixer AudioMixer) *Game {
	if mixer == nil {
		mixer = silentMixer{}
	}
	return &Game{
		session:  session,
		renderer: renderer,
		mixer:    mixer,
	}
}

// HandleEvent applies an input event, returns false when the game should exit
func (g *Game) HandleEvent(ev Event) bool {
	switch ev.Type {
	case EventQuit:
		g.mixer.Pause()
		return false

	case EventStart:
		// Ignored mid-race, the start trigger lives on the idle and end screens
		if g.session.Running() {
			return true
		}
		g.session.Start()
		if err := g.mixer.Play(); err != nil {
			log.Printf("Audio play failed: %v", err)
		}

	case EventResize:
		if ev.Width > 0 && ev.Height > 0 {
			g.session.Resize(ev.Width, ev.Height)
		}
	}
	return true
}

// Step runs one frame: tick if racing, present, then update audio
func (g *Game) Step() {
	g.frames++

	if !g.session.Running() {
		g.renderer.Render(g.session.Frame())
		return
	}

	running := g.session.Tick()
	frame := g.session.Frame()
	g.renderer.Render(frame)
	g.mixer.SetLeader(frame.Leader)

	if !running {
		g.mixer.Pause()
	}
}

// Frames returns the number of frames stepped
func (g *Game) Frames() uint64 {
	return g.frames
}

// Run steps the game every FrameUpdateInterval and applies events between frames
// Returns when a quit event arrives or events is closed
func (g *Game) Run(events <-chan Event) {
	g.run(events, parameter.FrameUpdateInterval)
}

func (g *Game) run(events <-chan Event, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.Step()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			g.Step()
		}
	}
}
