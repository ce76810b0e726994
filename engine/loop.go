package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/render"
)

// InputSource polls one frame of user input
type InputSource interface {
	Poll() Input
}

// Presenter shows a finished frame and reports the frame size it wants next
type Presenter interface {
	FrameSize() (width, height int)
	Present(fb *render.FrameBuffer, status Status) error
}

// Capturer persists a frame, returning where it was written
type Capturer interface {
	Capture(fb *render.FrameBuffer) (string, error)
}

// Sound plays cues for loop events
type Sound interface {
	PlayShutter()
	PlayAbsorb(n int)
}

// Loop drives poll, update, render and present once per frame on a single goroutine
type Loop struct {
	Scene     *Scene
	Pipeline  *render.Pipeline
	Input     InputSource
	Presenter Presenter
	Snapshots Capturer
	Sound     Sound

	// Clock decides how many steps each frame runs; nil runs exactly one
	Clock *StepClock
	// Interval paces frames; zero runs frames back to back
	Interval time.Duration
	// MaxFrames ends the loop after that many frames; zero runs until quit
	MaxFrames int
	// Time stamps status messages; defaults to the wall clock
	Time TimeProvider

	frames     int
	message    string
	messageEnd time.Time
}

// Run loops until quit is requested, MaxFrames is reached or ctx is cancelled
// A cancelled context ends the loop cleanly after the current frame
func (l *Loop) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		quit, err := l.Frame()
		if err != nil {
			return err
		}
		if quit || (l.MaxFrames > 0 && l.frames >= l.MaxFrames) {
			return nil
		}

		if tick == nil {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
}

// Frame runs a single iteration and reports whether quit was requested
// A quit request still completes the frame it arrived in
func (l *Loop) Frame() (bool, error) {
	var in Input
	if l.Input != nil {
		in = l.Input.Poll()
	}

	l.Scene.ApplyInput(in)

	steps := 1
	if l.Clock != nil {
		steps = l.Clock.Steps()
	}
	moved := 0
	for i := 0; i < steps; i++ {
		moved += l.Scene.Step()
	}
	if moved > 0 && l.Sound != nil {
		l.Sound.PlayAbsorb(moved)
	}

	if l.Presenter != nil {
		w, h := l.Presenter.FrameSize()
		fb := l.Pipeline.FrameBuffer()
		if w != fb.Width() || h != fb.Height() {
			l.Pipeline.Resize(w, h)
		}
	}

	l.Scene.RenderFrame(l.Pipeline)

	if in.Capture {
		l.Capture()
	}

	l.frames++

	if l.Presenter != nil {
		if err := l.Presenter.Present(l.Pipeline.FrameBuffer(), l.Status()); err != nil {
			return in.Quit, fmt.Errorf("present frame %d: %w", l.frames, err)
		}
	}
	return in.Quit, nil
}

// Capture writes the current frame through Snapshots
// Failures are logged and shown on the status line, the loop continues
func (l *Loop) Capture() (string, error) {
	if l.Snapshots == nil {
		return "", nil
	}
	path, err := l.Snapshots.Capture(l.Pipeline.FrameBuffer())
	if err != nil {
		log.Printf("snapshot failed: %v", err)
		l.setMessage("snapshot failed: " + err.Error())
		return "", err
	}
	log.Printf("snapshot written to %s", path)
	l.setMessage("saved " + path)
	if l.Sound != nil {
		l.Sound.PlayShutter()
	}
	return path, nil
}

// Status assembles the HUD line for the current frame
func (l *Loop) Status() Status {
	_, drawn := l.Pipeline.Stats()
	st := Status{
		Title: parameter.WindowTitle,
		Sources: []SourceStatus{
			sourceStatus("A", l.Scene.EmitterA.Source),
			sourceStatus("B", l.Scene.EmitterB.Source),
			sourceStatus("sink", l.Scene.Sink.Source),
		},
		Transferred: l.Scene.Transferred(),
		Drawn:       drawn,
	}
	if l.message != "" && l.now().Before(l.messageEnd) {
		st.Message = l.message
	}
	return st
}

// Frames returns the number of completed frames
func (l *Loop) Frames() int {
	return l.frames
}

func (l *Loop) setMessage(msg string) {
	l.message = msg
	l.messageEnd = l.now().Add(parameter.StatusMessageTimeout)
}

func (l *Loop) now() time.Time {
	if l.Time == nil {
		l.Time = NewMonotonicTimeProvider()
	}
	return l.Time.Now()
}
