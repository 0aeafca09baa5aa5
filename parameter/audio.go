package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Lead Channels
const (
	// AudioToneOne and AudioToneTwo are the default per-player tone frequencies in Hz
	AudioToneOne = 220.0
	AudioToneTwo = 330.0

	// AudioDefaultVolume is the linear gain of the leader channel
	AudioDefaultVolume = 0.25
)
