package mirror

import (
	"image"
	"io"

	"github.com/juju/errors"
	"github.com/rviscarra/termscreen/internal/encoders"
)

type frameStreamer struct {
	out       io.Writer
	resampler encoders.Resampler
	encoder   encoders.Encoder
}

func newFrameStreamer(out io.Writer, resampler encoders.Resampler, encoder encoders.Encoder) *frameStreamer {
	return &frameStreamer{
		out:       out,
		resampler: resampler,
		encoder:   encoder,
	}
}

// render paints frame into a cols x rows cell grid with a single write.
// A non-positive size is a no-op.
func (s *frameStreamer) render(frame image.Image, cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	resized := s.resampler.Resample(frame, cols, rows*2)
	payload, err := s.encoder.Encode(resized)
	if err != nil {
		return errors.Annotate(err, "could not encode frame")
	}
	if payload == nil {
		return nil
	}
	_, err = s.out.Write(payload)
	return errors.Annotate(err, "could not write frame")
}
