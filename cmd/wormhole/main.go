package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/wormhole/audio"
	"github.com/lixenwraith/wormhole/engine"
	"github.com/lixenwraith/wormhole/input"
	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/render"
	"github.com/lixenwraith/wormhole/snapshot"
	"github.com/lixenwraith/wormhole/terminal"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/wormhole.log")
	seedFlag      = flag.Int64("seed", 0, "Random seed, 0 uses the current time")
	fpsFlag       = flag.Int("fps", parameter.TargetFPS, "Frames per second")
	headlessFlag  = flag.Bool("headless", false, "Run without a terminal and save a final snapshot")
	framesFlag    = flag.Int("frames", parameter.HeadlessFrames, "Frames to run in headless mode")
	widthFlag     = flag.Int("width", parameter.HeadlessWidth, "Headless framebuffer width")
	heightFlag    = flag.Int("height", parameter.HeadlessHeight, "Headless framebuffer height")
	snapshotsFlag = flag.String("snapshots", "", "Directory for snapshot PNGs")
	muteFlag      = flag.Bool("mute", false, "Disable sound")
)

func main() {
	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mWORMHOLE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting, seed %d", seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene := engine.NewScene(rand.New(rand.NewSource(seed)))
	snapshots := snapshot.NewWriter(*snapshotsFlag)

	if *headlessFlag {
		if err := runHeadless(ctx, scene, snapshots); err != nil {
			fmt.Fprintf(os.Stderr, "wormhole: %v\n", err)
			os.Exit(1)
		}
		return
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	sound := audio.NewEngine()
	if !*muteFlag {
		if err := sound.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	defer sound.Close()

	fps := max(*fpsFlag, 1)
	w, h := term.FrameSize()
	clock := engine.NewMonotonicTimeProvider()

	loop := &engine.Loop{
		Scene:     scene,
		Pipeline:  render.NewPipeline(render.NewFrameBuffer(w, h)),
		Input:     input.NewPoller(term, clock),
		Presenter: term,
		Snapshots: snapshots,
		Sound:     sound,
		Clock:     engine.NewStepClock(clock, parameter.StepInterval, parameter.MaxStepsPerFrame),
		Interval:  time.Second / time.Duration(fps),
		Time:      clock,
	}

	if err := loop.Run(ctx); err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "wormhole: %v\n", err)
		os.Exit(1)
	}
	log.Printf("exit after %d frames, %d steps", loop.Frames(), scene.Steps())
}

// runHeadless advances the scene a fixed number of frames into an offscreen buffer
// and writes the last frame as a snapshot
func runHeadless(ctx context.Context, scene *engine.Scene, snapshots *snapshot.Writer) error {
	loop := &engine.Loop{
		Scene:     scene,
		Pipeline:  render.NewPipeline(render.NewFrameBuffer(*widthFlag, *heightFlag)),
		MaxFrames: max(*framesFlag, 1),
	}
	if err := loop.Run(ctx); err != nil {
		return err
	}

	loop.Snapshots = snapshots
	path, err := loop.Capture()
	if err != nil {
		return fmt.Errorf("final snapshot: %w", err)
	}
	fmt.Printf("%d frames, %d particles transferred, snapshot %s\n", loop.Frames(), scene.Transferred(), path)
	return nil
}
