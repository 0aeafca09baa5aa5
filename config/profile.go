package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/freefall/audio"
	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/world"
)

// Environment overrides, applied after the profile file
const (
	EnvAudioEnabled = "FREEFALL_AUDIO_ENABLED"
	EnvVolume       = "FREEFALL_VOLUME"
	EnvSeed         = "FREEFALL_SEED"
	EnvPlayerOne    = "FREEFALL_PLAYER1"
	EnvPlayerTwo    = "FREEFALL_PLAYER2"
)

// Profile holds presentation and session settings
// Physics tuning is compiled in and has no keys here
type Profile struct {
	// Seed drives obstacle placement and player hues, 0 seeds from the clock
	Seed    uint64       `toml:"seed"`
	Players Players      `toml:"players"`
	Audio   AudioProfile `toml:"audio"`
}

// Players holds both player profiles
type Players struct {
	One PlayerProfile `toml:"one"`
	Two PlayerProfile `toml:"two"`
}

// PlayerProfile is a display name and an optional hex color such as "#e04040"
type PlayerProfile struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// AudioProfile holds the lead mixer settings
type AudioProfile struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
	ToneOne float64 `toml:"tone_one"`
	ToneTwo float64 `toml:"tone_two"`
}

// Default returns the stock profile
func Default() Profile {
	return Profile{
		Players: Players{
			One: PlayerProfile{Name: parameter.PlayerOneName},
			Two: PlayerProfile{Name: parameter.PlayerTwoName},
		},
		Audio: AudioProfile{
			Enabled: true,
			Volume:  parameter.AudioDefaultVolume,
			ToneOne: parameter.AudioToneOne,
			ToneTwo: parameter.AudioToneTwo,
		},
	}
}

// Load builds a profile from defaults, the TOML file at path, the env file and the environment
// Empty path skips the file; a missing env file is not an error
func Load(path, envFile string) (Profile, error) {
	p := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &p)
		if err != nil {
			return Profile{}, fmt.Errorf("decode profile %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Profile{}, fmt.Errorf("profile %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	if envFile != "" {
		// Existing environment variables take precedence over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Profile{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := p.applyEnv(); err != nil {
		return Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p *Profile) applyEnv() error {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		p.Audio.Enabled = enabled
	}

	// Volume is given in percent, as a mixer slider would
	if v := os.Getenv(EnvVolume); v != "" {
		percent, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		p.Audio.Volume = min(max(float64(percent)/100, 0), 1)
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		p.Seed = seed
	}

	if v := os.Getenv(EnvPlayerOne); v != "" {
		p.Players.One.Name = v
	}
	if v := os.Getenv(EnvPlayerTwo); v != "" {
		p.Players.Two.Name = v
	}
	return nil
}

// Validate checks colors and audio settings
func (p Profile) Validate() error {
	if _, err := p.Styles(); err != nil {
		return err
	}
	if err := p.MixerConfig().Validate(); err != nil {
		return fmt.Errorf("audio profile: %w", err)
	}
	return nil
}

// Styles returns the player styles for a session, empty names fall back to the defaults
func (p Profile) Styles() ([2]world.PlayerStyle, error) {
	styles := world.DefaultStyles()
	for i, pp := range [2]PlayerProfile{p.Players.One, p.Players.Two} {
		if pp.Name != "" {
			styles[i].Name = pp.Name
		}
		if pp.Color == "" {
			continue
		}
		c, err := colorful.Hex(pp.Color)
		if err != nil {
			return styles, fmt.Errorf("player %d color %q: %w", i+1, pp.Color, err)
		}
		styles[i].Color = &c
	}
	return styles, nil
}

// MixerConfig returns the lead mixer settings
func (p Profile) MixerConfig() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = p.Audio.Enabled
	cfg.Volume = p.Audio.Volume
	cfg.Tones = [2]float64{p.Audio.ToneOne, p.Audio.ToneTwo}
	return cfg
}
