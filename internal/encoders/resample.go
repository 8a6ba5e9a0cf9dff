package encoders

import (
	"image"

	"github.com/nfnt/resize"
)

// LanczosResampler scales frames with a Lanczos3 filter, which keeps
// small text legible when a large screen is squeezed into a cell grid
type LanczosResampler struct{}

// NewLanczosResampler returns the default resampler
func NewLanczosResampler() Resampler {
	return LanczosResampler{}
}

// Resample returns src unchanged when it already has the requested size
func (LanczosResampler) Resample(src image.Image, width, height int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return src
	}
	return resize.Resize(uint(width), uint(height), src, resize.Lanczos3)
}
