package engine

import "github.com/lixenwraith/freefall/world"

// Renderer draws snapshots and never touches simulation state
// It must handle idle, running and ended frames
type Renderer interface {
	Render(f world.Frame)
}

// AudioMixer plays one channel per player and follows the leader
type AudioMixer interface {
	// Play starts or resumes playback with both channels silent
	Play() error
	// SetLeader gives full volume to the leader's channel and silences the other
	SetLeader(leader int)
	// Pause stops playback and rewinds both channels
	Pause()
}

// silentMixer is used when no audio device is available
type silentMixer struct{}

func (silentMixer) Play() error   { return nil }
func (silentMixer) SetLeader(int) {}
func (silentMixer) Pause()        {}
