package world

import (
	"log"
	"time"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/physics"
	"github.com/lixenwraith/freefall/vmath"
)

// Session owns the bodies, the obstacle stream, the camera and the race timer
// All methods must be called from one goroutine
type Session struct {
	clock  Clock
	rng    vmath.Source
	styles [2]PlayerStyle

	width, height float64

	players   [2]*Player
	obstacles []*physics.Obstacle
	gen       *Generator
	camera    float64

	start   time.Time
	running bool
	result  *Result
	ticks   uint64
}

// NewSession creates an idle session; Start begins a race
func NewSession(clock Clock, rng vmath.Source, styles [2]PlayerStyle, width, height float64) *Session {
	s := &Session{
		clock:  clock,
		rng:    rng,
		styles: styles,
		width:  width,
		height: height,
		gen:    NewGenerator(rng),
	}
	s.spawnPlayers()
	return s
}

// Resize updates the viewport; existing obstacles keep their placement
func (s *Session) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Viewport returns the current viewport size in world units
func (s *Session) Viewport() (width, height float64) {
	return s.width, s.height
}

// Start discards all state and begins a new race
func (s *Session) Start() {
	s.spawnPlayers()
	s.gen = NewGenerator(s.rng)
	s.obstacles = make([]*physics.Obstacle, 0, parameter.ObstacleSeedCount*2)
	for i := 0; i < parameter.ObstacleSeedCount; i++ {
		s.obstacles = append(s.obstacles, s.gen.Next(s.width))
	}

	s.camera = 0
	s.start = s.clock.Now()
	s.result = nil
	s.ticks = 0
	s.running = true

	log.Printf("Session started: viewport %.0fx%.0f, %d obstacles, frontier %.0f",
		s.width, s.height, len(s.obstacles), s.gen.Frontier())
}

func (s *Session) spawnPlayers() {
	s.players = [2]*Player{
		newPlayer(s.styles[0], s.width/3, s.rng),
		newPlayer(s.styles[1], s.width/3*2, s.rng),
	}
}

// Running reports whether the race is in progress
func (s *Session) Running() bool {
	return s.running
}

// Tick advances the race by one fixed step and returns whether it is still running
// Order: integrate, camera, obstacle contacts, wall clamp and stuck release,
// body contact, generation, timer
// A body pair push that crosses a wall gets a third clamp, which also zeroes
// the horizontal speed that push produced
func (s *Session) Tick() bool {
	if !s.running {
		return false
	}
	s.ticks++

	for _, p := range s.players {
		p.Body.ClearContact()
		p.Body.Integrate()
		p.Body.BounceWalls(s.width)
	}

	s.camera = s.leadY() - s.height*parameter.CameraLeadFraction

	for _, o := range s.obstacles {
		for _, p := range s.players {
			physics.ResolveObstacle(p.Body, o)
		}
	}

	for _, p := range s.players {
		p.Body.ConfineWalls(s.width)
		if id, ok := p.Body.TrackStuck(); ok {
			if s.RemoveObstacle(id) {
				log.Printf("Obstacle %d collapsed under %s at y=%.0f", id, p.Name, p.Body.Pos.Y)
			}
		}
	}

	if physics.ResolveBodies(s.players[0].Body, s.players[1].Body) {
		// Separation may push a body through a wall
		for _, p := range s.players {
			p.Body.ConfineWalls(s.width)
		}
	}

	if s.gen.Frontier() < s.camera+s.height*parameter.ObstacleLookaheadScreens {
		s.obstacles = append(s.obstacles, s.gen.Next(s.width))
	}

	if s.clock.Now().Sub(s.start) > parameter.SessionDuration {
		s.finish()
	}
	return s.running
}

func (s *Session) finish() {
	s.running = false

	a, b := s.players[0].Body.Pos.Y, s.players[1].Body.Pos.Y
	r := &Result{Winner: -1, Depths: [2]float64{a, b}}
	switch {
	case a > b:
		r.Winner = 0
	case b > a:
		r.Winner = 1
	default:
		r.Draw = true
	}
	if !r.Draw {
		r.Name = s.players[r.Winner].Name
	}
	s.result = r

	if r.Draw {
		log.Printf("Session ended in a draw at y=%.0f after %d ticks", a, s.ticks)
	} else {
		log.Printf("Session ended: %s wins (%.0f vs %.0f) after %d ticks", r.Name, a, b, s.ticks)
	}
}

// RemoveObstacle deletes the first obstacle with the given ID
// Returns false if it is no longer present
func (s *Session) RemoveObstacle(id uint64) bool {
	for i, o := range s.obstacles {
		if o.ID() == id {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Session) leadY() float64 {
	return max(s.players[0].Body.Pos.Y, s.players[1].Body.Pos.Y)
}

// Leader returns the index of the player with greater Y, 1 on equal Y
func (s *Session) Leader() int {
	if s.players[0].Body.Pos.Y > s.players[1].Body.Pos.Y {
		return 0
	}
	return 1
}

// Camera returns the world Y shown at the top of the viewport
func (s *Session) Camera() float64 {
	return s.camera
}

// Frontier returns the Y of the deepest generated obstacle
func (s *Session) Frontier() float64 {
	return s.gen.Frontier()
}

// Player returns player i (0 or 1)
func (s *Session) Player(i int) *Player {
	return s.players[i]
}

// Obstacles returns a copy of the obstacle sequence in generation order
func (s *Session) Obstacles() []*physics.Obstacle {
	out := make([]*physics.Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Result returns the outcome once the race has ended
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Ticks returns the number of ticks since Start
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Remaining returns race time left, zero when idle or ended
func (s *Session) Remaining() time.Duration {
	if !s.running {
		return 0
	}
	left := parameter.SessionDuration - s.clock.Now().Sub(s.start)
	return max(left, 0)
}

// Frame snapshots the session, keeping only obstacles near the viewport
func (s *Session) Frame() Frame {
	f := Frame{
		Camera:    s.camera,
		Width:     s.width,
		Height:    s.height,
		Leader:    s.Leader(),
		Running:   s.running,
		Remaining: s.Remaining(),
		Tick:      s.ticks,
	}

	for i, p := range s.players {
		f.Players[i] = PlayerView{
			Name:   p.Name,
			Color:  p.Color,
			Pos:    p.Body.Pos,
			Radius: p.Body.Radius(),
		}
	}

	for _, o := range s.obstacles {
		if Visible(o.Y(), o.Height(), s.camera, s.height, parameter.CullMargin) {
			f.Obstacles = append(f.Obstacles, newObstacleView(o))
		}
	}

	if s.result != nil {
		r := *s.result
		f.Result = &r
	}
	return f
}
