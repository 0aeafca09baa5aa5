package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/freefall/audio"
	"github.com/lixenwraith/freefall/config"
	"github.com/lixenwraith/freefall/engine"
	"github.com/lixenwraith/freefall/input"
	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/render"
	"github.com/lixenwraith/freefall/vmath"
	"github.com/lixenwraith/freefall/world"
)

var (
	configPath = flag.String("config", "", "Path to a TOML profile")
	envFile    = flag.String("env", ".env", "Env file loaded before FREEFALL_* overrides")
	seedFlag   = flag.Uint64("seed", 0, "Obstacle and color seed, 0 uses the profile or the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/freefall.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	profile, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load profile: %v\n", err)
		os.Exit(1)
	}
	styles, err := profile.Styles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid player styles: %v\n", err)
		os.Exit(1)
	}

	seed := profile.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Seed %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nFREEFALL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	// Audio is optional, the race runs silent without a device
	var mixer engine.AudioMixer
	if cfg := profile.MixerConfig(); cfg.Enabled && !*muteFlag {
		if lm, err := startAudio(cfg); err == nil {
			mixer = lm
			defer lm.Close()
		} else {
			log.Printf("Audio unavailable: %v (continuing without audio)", err)
		}
	}

	cols, rows := screen.Size()
	width, height := render.Viewport(cols, rows)
	session := world.NewSession(world.NewSystemClock(), vmath.NewFastRand(seed), styles, width, height)
	game := engine.NewGame(session, render.NewTerminalRenderer(screen), mixer)

	events := make(chan engine.Event, parameter.EventQueueSize)
	go input.Poll(screen, events)

	game.Run(events)
	log.Printf("Exiting after %d frames", game.Frames())
}

func startAudio(cfg audio.Config) (*audio.LeadMixer, error) {
	lm, err := audio.NewLeadMixer(cfg)
	if err != nil {
		return nil, err
	}
	if err := lm.Init(); err != nil {
		return nil, err
	}
	return lm, nil
}
