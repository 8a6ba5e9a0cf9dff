package rdisplay

import "image"

// Screen is a capturable display area. Index 0 is the virtual screen
// spanning every active display, 1..N are the displays themselves.
type Screen struct {
	Index  int
	Bounds image.Rectangle
}

// Service enumerates screens and grabs frames from them
type Service interface {
	Screens() ([]Screen, error)
	Grab(screen Screen) (*image.RGBA, error)
}
