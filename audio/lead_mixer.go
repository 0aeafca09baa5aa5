package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/freefall/parameter"
)

// channel is one player's looping tone behind a pause switch and a gain stage
type channel struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// LeadMixer plays one tone per player and gives full volume to the current leader only
// Works without a speaker: until Init succeeds state changes are tracked but nothing is heard
type LeadMixer struct {
	mu          sync.Mutex
	cfg         Config
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	channels    [2]channel
	initialized bool
	playing     bool
	leader      int
}

// NewLeadMixer builds both channels paused and silent
func NewLeadMixer(cfg Config) (*LeadMixer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid audio config: %w", err)
	}
	m := &LeadMixer{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
		leader:     -1,
	}
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init opens the audio device and attaches the mixer, a second call is a no-op
func (m *LeadMixer) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play rewinds both tones and unpauses them silent, the first SetLeader makes one audible
func (m *LeadMixer) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lockSpeaker()
	defer m.unlockSpeaker()

	if err := m.rebuild(); err != nil {
		return err
	}
	for _, ch := range m.channels {
		ch.ctrl.Paused = false
	}
	m.playing = true
	m.leader = -1
	return nil
}

// SetLeader gives the leader's channel full volume and silences the other
func (m *LeadMixer) SetLeader(leader int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing || leader == m.leader || leader < 0 || leader > 1 {
		return
	}

	m.lockSpeaker()
	defer m.unlockSpeaker()

	for i, ch := range m.channels {
		if i == leader {
			setGain(ch.volume, m.cfg.Volume)
		} else {
			setGain(ch.volume, 0)
		}
	}
	m.leader = leader
}

// Pause stops both channels and rewinds them
func (m *LeadMixer) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing {
		return
	}

	m.lockSpeaker()
	defer m.unlockSpeaker()

	// Rebuilding from valid config cannot fail once NewLeadMixer succeeded
	_ = m.rebuild()
	m.playing = false
	m.leader = -1
}

// Close detaches everything from the device
func (m *LeadMixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
	m.playing = false
}

// Playing reports whether the channels are unpaused
func (m *LeadMixer) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// Gains returns the audible linear gain of each channel, 0 when paused or silent
func (m *LeadMixer) Gains() [2]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lockSpeaker()
	defer m.unlockSpeaker()

	var gains [2]float64
	for i, ch := range m.channels {
		if ch.ctrl.Paused || ch.volume.Silent {
			continue
		}
		gains[i] = math.Pow(ch.volume.Base, ch.volume.Volume)
	}
	return gains
}

// rebuild replaces both channels with fresh tones, paused and silent
// Caller holds mu and the speaker lock when initialized
func (m *LeadMixer) rebuild() error {
	var next [2]channel
	for i, freq := range m.cfg.Tones {
		tone, err := generators.SineTone(m.sampleRate, freq)
		if err != nil {
			return fmt.Errorf("tone %d: %w", i+1, err)
		}
		ctrl := &beep.Ctrl{Streamer: tone, Paused: true}
		next[i] = channel{
			ctrl:   ctrl,
			volume: &effects.Volume{Streamer: ctrl, Base: 2, Silent: true},
		}
	}

	m.mixer.Clear()
	for i := range next {
		m.channels[i] = next[i]
		m.mixer.Add(next[i].volume)
	}
	return nil
}

func (m *LeadMixer) lockSpeaker() {
	if m.initialized {
		speaker.Lock()
	}
}

func (m *LeadMixer) unlockSpeaker() {
	if m.initialized {
		speaker.Unlock()
	}
}

// setGain maps a linear gain onto a base-2 volume stage
// math.Log2(0) is -Inf, so zero gain is expressed as silent
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}
