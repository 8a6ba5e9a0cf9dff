package rdisplay

import (
	"image"

	"github.com/juju/errors"
	"github.com/kbinani/screenshot"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("rdisplay")

// XVideoProvider implements the rdisplay.Service interface on top of the
// platform capture APIs (X11, Windows GDI, macOS CoreGraphics)
type XVideoProvider struct{}

// Screens returns the virtual screen followed by every active display
func (x *XVideoProvider) Screens() ([]Screen, error) {
	numScreens := screenshot.NumActiveDisplays()
	if numScreens <= 0 {
		return nil, errors.New("no active displays")
	}
	displays := make([]image.Rectangle, numScreens)
	for i := 0; i < numScreens; i++ {
		displays[i] = screenshot.GetDisplayBounds(i)
	}
	return screensFromBounds(displays), nil
}

// Grab captures one frame of the screen
func (x *XVideoProvider) Grab(screen Screen) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(screen.Bounds)
	if err != nil {
		return nil, errors.Annotatef(err, "could not capture screen %d %v", screen.Index, screen.Bounds)
	}
	return img, nil
}

// NewVideoProvider returns a screenshot-based video provider
func NewVideoProvider() (Service, error) {
	return &XVideoProvider{}, nil
}

func screensFromBounds(displays []image.Rectangle) []Screen {
	screens := make([]Screen, 0, len(displays)+1)
	var all image.Rectangle
	for _, b := range displays {
		all = all.Union(b)
	}
	screens = append(screens, Screen{Index: 0, Bounds: all})
	for i, b := range displays {
		log.Debugf("display %d: %v", i+1, b)
		screens = append(screens, Screen{Index: i + 1, Bounds: b})
	}
	return screens
}
