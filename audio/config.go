package audio

import (
	"fmt"

	"github.com/lixenwraith/freefall/parameter"
)

// Config holds the lead mixer settings
type Config struct {
	Enabled bool
	// Volume is the linear gain of the leader channel, 0 to 1
	Volume float64
	// Tones are the per-player tone frequencies in Hz
	Tones      [2]float64
	SampleRate int
}

// DefaultConfig returns the compiled-in audio settings
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioDefaultVolume,
		Tones:      [2]float64{parameter.AudioToneOne, parameter.AudioToneTwo},
		SampleRate: parameter.AudioSampleRate,
	}
}

// Validate reports settings the mixer cannot play
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within [0,1], got %v", c.Volume)
	}
	nyquist := float64(c.SampleRate) / 2
	for i, tone := range c.Tones {
		if tone <= 0 || tone >= nyquist {
			return fmt.Errorf("tone %d must be within (0,%v) Hz, got %v", i+1, nyquist, tone)
		}
	}
	return nil
}
