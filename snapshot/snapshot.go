// Package snapshot writes the framebuffer to numbered PNG files
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/render"
)

// ErrEmptyFrame is returned when the framebuffer has no pixels
var ErrEmptyFrame = errors.New("snapshot: empty frame")

// Writer numbers snapshots from 0 within its directory
// The counter advances on every attempt, including failed ones
type Writer struct {
	dir  string
	next int
}

// NewWriter returns a writer placing files in dir; empty dir means the working directory
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Next returns the number the next capture will use
func (w *Writer) Next() int {
	return w.next
}

// Path returns the file path for snapshot n
func (w *Writer) Path(n int) string {
	return filepath.Join(w.dir, parameter.SnapshotPrefix+strconv.Itoa(n)+parameter.SnapshotExt)
}

// Capture encodes the framebuffer and returns the written path
func (w *Writer) Capture(fb *render.FrameBuffer) (string, error) {
	path := w.Path(w.next)
	w.next++

	img, err := Image(fb)
	if err != nil {
		return path, err
	}

	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return path, fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return path, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Image converts the framebuffer to an opaque image with the origin at the top-left
func Image(fb *render.FrameBuffer) (*image.RGBA, error) {
	if fb == nil || fb.Width() == 0 || fb.Height() == 0 {
		return nil, ErrEmptyFrame
	}
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := fb.Row(h - 1 - y)
		for x, c := range row {
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img, nil
}
