package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/block-walker/audio"
	"github.com/lixenwraith/block-walker/config"
	"github.com/lixenwraith/block-walker/engine"
	"github.com/lixenwraith/block-walker/input"
	"github.com/lixenwraith/block-walker/render"
	"github.com/lixenwraith/block-walker/terrain"
)

var (
	configFlag  = flag.String("config", "", "Path to YAML config (default: $BLOCKWALKER_CONFIG)")
	terrainFlag = flag.String("terrain", "", "Terrain source override: sine or perlin")
	seedFlag    = flag.Int64("seed", 0, "Perlin seed override")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *terrainFlag != "" {
		cfg.Terrain.Source = *terrainFlag
	}
	if *seedFlag != 0 {
		cfg.Terrain.Seed = *seedFlag
	}

	var source terrain.HeightSource
	switch cfg.Terrain.Source {
	case config.SourcePerlin:
		source = terrain.NewPerlinField(cfg.Terrain.Seed)
	case config.SourceSine:
		source = terrain.SineField{}
	default:
		fmt.Fprintf(os.Stderr, "Unknown terrain source %q\n", cfg.Terrain.Source)
		os.Exit(1)
	}

	// World generation happens before the terminal switches to raw mode
	// so any failure stays readable
	world := terrain.BuildWorld(source)

	surface, err := render.NewSurface()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer surface.Fini()

	// Panic Recovery: restore the terminal before the trace hits stderr,
	// otherwise raw mode garbles it
	defer func() {
		if r := recover(); r != nil {
			surface.Fini()
			fmt.Fprintf(os.Stderr, "\nBLOCK-WALKER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	clock := engine.NewMonotonicTimeProvider()
	width, height := surface.Size()
	ctx := engine.NewGameContext(world, clock, width, height)
	ctx.Input = input.NewAggregatorWith(clock, cfg.Input.Settings())

	var stepPlayer engine.StepPlayer
	if cfg.Audio.Enabled {
		audioEngine, err := audio.NewEngine()
		if err == nil {
			stepPlayer = audioEngine
			defer audioEngine.Close()
		}
		// Init failure is non-fatal, the game runs silent
	}

	// Terminal event poller. PollEvent returns nil once the screen is
	// finalized, which ends the goroutine.
	go func() {
		for {
			ev := surface.PollEvent()
			if ev == nil {
				return
			}
			for _, de := range input.FromScreenEvent(ev) {
				ctx.Events.Push(de)
			}
		}
	}()

	// Optional gamepad reader; silently absent when the device is not there
	gamepadStop := make(chan struct{})
	defer close(gamepadStop)
	go input.PollGamepad(cfg.Input.GamepadDevice, ctx.Events, gamepadStop)

	renderer := render.NewTerminalRenderer(surface)
	loop := engine.NewLoop(ctx, renderer, stepPlayer)
	loop.Run()
}
