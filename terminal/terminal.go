// Package terminal is the window of the simulator: a tcell screen showing the framebuffer
// as half-block cells and feeding key presses to the input poller
package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wormhole/engine"
	"github.com/lixenwraith/wormhole/input"
	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/render"
)

// halfBlock shows two vertical pixels per cell: foreground on top, background below
const halfBlock = '▀'

// Terminal owns the tcell screen and its event pump
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	statusStyle tcell.Style
}

// New initializes the controlling terminal
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes the given screen and starts pumping its events
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen:      screen,
		events:      make(chan tcell.Event, parameter.EventQueueSize),
		quit:        make(chan struct{}),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until Fini; PollEvent returns nil once the screen is finalized
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Keys drains pending events without blocking and returns the key presses among them
// Resize events resynchronize the screen
func (t *Terminal) Keys() []input.KeyPress {
	var keys []input.KeyPress
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys = append(keys, input.KeyPress{Key: ev.Key(), Rune: ev.Rune()})
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return keys
		}
	}
}

// FrameSize returns the framebuffer size that fills the screen above the status line
func (t *Terminal) FrameSize() (int, int) {
	w, h := t.screen.Size()
	rows := max(h-parameter.StatusRows, 0)
	return w, rows * 2
}

// Present draws the framebuffer and the status line, then shows the screen
// Framebuffer row 0 is the bottom of the image, so cell row 0 takes the top two rows
func (t *Terminal) Present(fb *render.FrameBuffer, status engine.Status) error {
	w, h := t.screen.Size()
	rows := max(h-parameter.StatusRows, 0)
	top := fb.Height() - 1

	for row := 0; row < rows; row++ {
		upper := top - 2*row
		lower := upper - 1
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(toColor(fb.At(x, upper))).
				Background(toColor(fb.At(x, lower)))
			t.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}

	if parameter.StatusRows > 0 && h > 0 {
		t.drawText(0, h-1, w, status.String(), t.statusStyle)
	}

	t.screen.Show()
	return nil
}

// drawText writes s at (x, y), clipped to width and padded with spaces
func (t *Terminal) drawText(x, y, width int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		if col >= x+width {
			return
		}
		t.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < x+width; col++ {
		t.screen.SetContent(col, y, ' ', nil, style)
	}
}

// Fini stops the event pump and restores the terminal, safe to call more than once
func (t *Terminal) Fini() {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

func toColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// EmergencyReset restores a sane terminal after a crash without going through tcell
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort in crash context
	resetTerminalMode()
}
