package mirror

import (
	"bytes"
	"image"
	"image/color"
	"sync"

	"github.com/rviscarra/termscreen/internal/rdisplay"
)

type fakeDisplay struct {
	screens []rdisplay.Screen
	frame   *image.RGBA
	grabErr error
	onGrab  func(n int)

	mu    sync.Mutex
	grabs int
}

func newFakeDisplay(displays int) *fakeDisplay {
	screens := []rdisplay.Screen{{Index: 0, Bounds: image.Rect(0, 0, 64*displays, 48)}}
	for i := 1; i <= displays; i++ {
		screens = append(screens, rdisplay.Screen{Index: i, Bounds: image.Rect(64*(i-1), 0, 64*i, 48)})
	}
	frame := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			frame.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 0x80, A: 0xff})
		}
	}
	return &fakeDisplay{screens: screens, frame: frame}
}

func (d *fakeDisplay) Screens() ([]rdisplay.Screen, error) {
	return d.screens, nil
}

func (d *fakeDisplay) Grab(rdisplay.Screen) (*image.RGBA, error) {
	d.mu.Lock()
	d.grabs++
	n := d.grabs
	d.mu.Unlock()
	if d.onGrab != nil {
		d.onGrab(n)
	}
	if d.grabErr != nil {
		return nil, d.grabErr
	}
	return d.frame, nil
}

func (d *fakeDisplay) grabCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.grabs
}

type fakeTerminal struct {
	cols, rows int

	writes   [][]byte
	acquires int
	releases int
	clears   int
}

func (t *fakeTerminal) Write(p []byte) (int, error) {
	t.writes = append(t.writes, append([]byte(nil), p...))
	return len(p), nil
}

func (t *fakeTerminal) Size() (int, int) { return t.cols, t.rows }

func (t *fakeTerminal) Acquire() error {
	t.acquires++
	return nil
}

func (t *fakeTerminal) Release() error {
	t.releases++
	return nil
}

func (t *fakeTerminal) Clear() error {
	t.clears++
	return nil
}

// frames returns the writes that paint a frame
func (t *fakeTerminal) frames() [][]byte {
	var frames [][]byte
	for _, w := range t.writes {
		if bytes.HasPrefix(w, []byte("\x1b[H")) {
			frames = append(frames, w)
		}
	}
	return frames
}
